package cli

import (
	"github.com/spf13/pflag"

	"github.com/jongio/urlprefix/prefix"
)

// protocolValue is a pflag.Value backed by prefix.ParseProtocol.
type protocolValue struct {
	p *prefix.Protocol
}

var _ pflag.Value = (*protocolValue)(nil)

func newProtocolValue(def prefix.Protocol, p *prefix.Protocol) *protocolValue {
	*p = def
	return &protocolValue{p: p}
}

func (v *protocolValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.Name()
}

func (v *protocolValue) Set(s string) error {
	parsed, err := prefix.ParseProtocol(s)
	if err != nil {
		return err
	}
	*v.p = parsed
	return nil
}

func (v *protocolValue) Type() string {
	return "protocol"
}

// validationValue is a pflag.Value backed by prefix.ParseValidation.
type validationValue struct {
	v *prefix.Validation
}

var _ pflag.Value = (*validationValue)(nil)

func newValidationValue(def prefix.Validation, v *prefix.Validation) *validationValue {
	*v = def
	return &validationValue{v: v}
}

func (v *validationValue) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

func (v *validationValue) Set(s string) error {
	parsed, err := prefix.ParseValidation(s)
	if err != nil {
		return err
	}
	*v.v = parsed
	return nil
}

func (v *validationValue) Type() string {
	return "validation"
}
