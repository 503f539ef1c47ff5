package question

// SampleQuestions returns the built-in question set used when a module carries
// no quiz of its own.
func SampleQuestions() []Question {
	return []Question{
		{
			ID:     "sample1",
			Prompt: "What is the main difference between FIR and IIR filters?",
			Options: []string{
				"FIR filters have finite impulse response while IIR filters have infinite impulse response",
				"FIR filters are always unstable while IIR filters are always stable",
				"FIR filters use only past outputs while IIR filters use only past inputs",
				"There is no difference between them",
			},
			CorrectAnswers: []string{"A"},
		},
		{
			ID:     "sample2",
			Prompt: "Which of the following are advantages of digital filters over analog filters? (Select all that apply)",
			Options: []string{
				"Higher precision and accuracy",
				"Better noise immunity",
				"Flexibility and programmability",
				"Lower cost for complex designs",
			},
			CorrectAnswers:  []string{"A", "B", "C", "D"},
			MultipleCorrect: true,
		},
		{
			ID:     "sample3",
			Prompt: "What is the Nyquist frequency?",
			Options: []string{
				"The highest frequency that can be represented in a digital system",
				"Half the sampling frequency",
				"The frequency at which aliasing occurs",
				"The lowest frequency that can be represented",
			},
			CorrectAnswers: []string{"B"},
		},
		{
			ID:     "sample4",
			Prompt: "Which transform is used to convert from time domain to frequency domain in digital signal processing?",
			Options: []string{
				"Laplace Transform",
				"Z-Transform",
				"Fourier Transform",
				"Wavelet Transform",
			},
			CorrectAnswers:  []string{"B", "C"},
			MultipleCorrect: true,
		},
	}
}
