package nargs

import (
	"reflect"
	"unicode/utf8"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired
type Validate interface {
	Struct(s interface{}) error
}

// FillOpt is a functional argument for Args.Fill
type FillOpt func(*fillConfig)

type fillConfig struct {
	tagName   string
	validator Validate
}

// WithValidate runs v.Struct on the model once it has been filled.
func WithValidate(v Validate) FillOpt {
	return func(c *fillConfig) {
		c.validator = v
	}
}

// WithTag overrides the struct tag that Fill looks at. The default is "args".
func WithTag(tagName string) FillOpt {
	return func(c *fillConfig) {
		c.tagName = tagName
	}
}

type fillTag struct {
	Letter   string `pt:"0"`
	Required bool   `pt:"required"`
}

// Fill copies parsed flag values into a struct. Fields name their flag
// with a tag:
//
//	type Options struct {
//		Logging bool          `args:"l"`
//		Port    int64         `args:"p,required"`
//		Wait    time.Duration `args:"w"`
//	}
//
// Values are converted from their command-line text, so a field may
// have any type that can be set from a string. Fields whose flag was
// not given are left alone unless they are marked required.
//
// Fill on invalid arguments returns the same usage error as Err.
func (a *Args) Fill(model interface{}, opts ...FillOpt) error {
	c := fillConfig{
		tagName: "args",
	}
	for _, f := range opts {
		f(&c)
	}
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Type().Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		return commonerrors.ProgrammerError(errors.Errorf(
			"First argument to Fill must be a non-nil pointer to a struct, not %T", model))
	}
	if err := a.Err(); err != nil {
		return err
	}
	var walkErr error
	reflectutils.WalkStructElements(v.Type(), func(f reflect.StructField) bool {
		if walkErr != nil {
			return false
		}
		tag := reflectutils.SplitTag(f.Tag).Set().Get(c.tagName)
		if tag.Tag == "" {
			return true
		}
		walkErr = a.fillField(v.Elem(), f, tag)
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	if c.validator != nil {
		return errors.WithStack(c.validator.Struct(model))
	}
	return nil
}

func (a *Args) fillField(v reflect.Value, f reflect.StructField, tag reflectutils.Tag) error {
	var ft fillTag
	err := tag.Fill(&ft)
	if err != nil {
		return commonerrors.ProgrammerError(errors.Wrap(err, f.Name))
	}
	if ft.Letter == "" || ft.Letter == "-" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(ft.Letter)
	if size != len(ft.Letter) {
		return commonerrors.ProgrammerError(errors.Errorf(
			"%s: %s tag must name a single flag letter, not %q", f.Name, tag.Tag, ft.Letter))
	}
	m, ok := a.marshalers[r]
	if !ok {
		return commonerrors.ProgrammerError(errors.Errorf(
			"%s: flag -%c is not declared in %q", f.Name, r, a.schema))
	}
	if !a.Has(r) {
		if ft.Required {
			return commonerrors.UsageError(errors.Errorf("flag -%c is required", r))
		}
		return nil
	}
	field, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return commonerrors.ProgrammerError(errors.Wrap(err, f.Name))
	}
	if !field.CanSet() {
		return commonerrors.ProgrammerError(errors.Errorf("%s: field cannot be set", f.Name))
	}
	setter, err := reflectutils.MakeStringSetter(f.Type)
	if err != nil {
		return commonerrors.ProgrammerError(errors.Wrap(err, f.Name))
	}
	debugf("fill %s from -%c (%s) = %q", f.Name, r, m.kind, m.text())
	err = setter(field, m.text())
	if err != nil {
		return commonerrors.UsageError(errors.Wrapf(err, "value for -%c", r))
	}
	return nil
}
