package translator

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRequestFailed covers transport errors, non-2xx statuses and bodies
	// that are not JSON at all.
	ErrRequestFailed = errors.New("translation request failed")
	// ErrUnexpectedResponse means the endpoint answered 2xx with a body of the
	// wrong shape.
	ErrUnexpectedResponse = errors.New("unexpected translation response")
)

type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	Endpoint    string        `mapstructure:"endpoint" json:"endpoint"`
	Client      string        `mapstructure:"client" json:"client"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
	ProjectID   string        `mapstructure:"project" json:"project_id"`
}

type TranslateRequest struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string        `json:"service_name"`
	TranslatedText string        `json:"translated_text"`
	DetectedSource string        `json:"detected_source,omitempty"`
	Latency        time.Duration `json:"latency"`
	Error          string        `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
}
