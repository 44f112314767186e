package auth

import (
	"net/http"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/restbase/errors"
)

// JWTConfig configures per-request token minting.
type JWTConfig struct {
	// Method is one of HS256, HS384, HS512. Defaults to HS256.
	Method string `yaml:"method" mapstructure:"method"`
	// Secret is the HMAC signing secret.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// Issuer is the "iss" claim.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// Subject is the "sub" claim.
	Subject string `yaml:"subject" mapstructure:"subject"`
	// Audience is the "aud" claim.
	Audience []string `yaml:"audience" mapstructure:"audience"`
	// TTL is the token lifetime. Defaults to one minute.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ApplyDefaults fills in zero-value fields.
func (c *JWTConfig) ApplyDefaults() {
	if c.Method == "" {
		c.Method = "HS256"
	}
	if c.TTL <= 0 {
		c.TTL = time.Minute
	}
}

// Validate checks the signing configuration.
func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return errors.MissingField("jwt.secret")
	}
	if signingMethod(c.Method) == nil {
		return errors.InvalidConfig("jwt.method", "unsupported signing method "+c.Method)
	}
	return nil
}

func signingMethod(name string) gojwt.SigningMethod {
	switch name {
	case "HS256":
		return gojwt.SigningMethodHS256
	case "HS384":
		return gojwt.SigningMethodHS384
	case "HS512":
		return gojwt.SigningMethodHS512
	default:
		return nil
	}
}

// Signer mints a fresh signed token for each request.
type Signer struct {
	cfg    JWTConfig
	method gojwt.SigningMethod
	now    func() time.Time
}

// JWT creates a Signer. The config is defaulted and validated.
func JWT(cfg JWTConfig) (*Signer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Signer{cfg: cfg, method: signingMethod(cfg.Method), now: time.Now}, nil
}

// Token returns a newly signed token.
func (s *Signer) Token() (string, error) {
	now := s.now()
	claims := gojwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Subject:   s.cfg.Subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		NotBefore: gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
	}
	if len(s.cfg.Audience) > 0 {
		claims.Audience = gojwt.ClaimStrings(s.cfg.Audience)
	}
	signed, err := gojwt.NewWithClaims(s.method, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", errors.AuthFailed("jwt", err)
	}
	return signed, nil
}

// Apply sets a bearer token minted for this request.
func (s *Signer) Apply(req *http.Request) error {
	tok, err := s.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	return nil
}
