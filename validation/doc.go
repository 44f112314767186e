// Package validation provides configuration and input validation for restbase.
//
// Struct tag validation (backed by go-playground/validator) is used for
// configuration structs; the programmatic Validator collects field errors for
// checks that do not fit a tag.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	    Method  string `mapstructure:"method" validate:"httpmethod"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("path", tmpl.Path).HTTPMethod("method", tmpl.Method)
//	err := v.Validate()
package validation
