package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type structValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var loadValidator = sync.OnceValue(func() structValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator("en")
	if !found {
		panic("config: english translator not registered")
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("config: register validation translations: %v", err))
	}
	return structValidator{validate: v, trans: trans}
})

// Validate checks a normalized config for correctness and its data directory.
func Validate(cfg *Config) error {
	var issues issueCollector

	sv := loadValidator()
	if err := sv.validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			issues.add(fieldPath(fe.Namespace()), fe.Translate(sv.trans))
		}
	}

	if dataDir := cfg.DataPath(); cfg.DataDir != "" {
		info, err := os.Stat(dataDir)
		switch {
		case os.IsNotExist(err):
			issues.add("data_dir", fmt.Sprintf("directory %q does not exist", dataDir))
		case err != nil:
			issues.add("data_dir", fmt.Sprintf("stat %q: %v", dataDir, err))
		case !info.IsDir():
			issues.add("data_dir", fmt.Sprintf("%q is not a directory", dataDir))
		}
	}

	return issues.result()
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
