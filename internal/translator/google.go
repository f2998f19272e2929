package translator

import (
	"context"
	"fmt"
	"os"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/valpere/tlumach/internal/langs"
)

// GoogleCloudService uses the Cloud Translation API instead of the public
// widget endpoint. Selected with backend "cloud".
type GoogleCloudService struct {
	credentials string
	projectID   string
}

func NewGoogleCloudService(cfg ServiceConfig) *GoogleCloudService {
	return &GoogleCloudService{credentials: cfg.Credentials, projectID: cfg.ProjectID}
}

func (s *GoogleCloudService) Name() string {
	return "google-cloud"
}

func (s *GoogleCloudService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetLangTag, err := language.Parse(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("%w: invalid target language: %v", ErrRequestFailed, err)
	}

	opts := []option.ClientOption{}
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}
	if s.projectID != "" {
		opts = append(opts, option.WithQuotaProject(s.projectID))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("%w: failed to create client: %v", ErrRequestFailed, err)
	}
	defer client.Close()

	var translations []translate.Translation
	if req.SourceLang == "" || req.SourceLang == langs.Auto {
		translations, err = client.Translate(ctx, []string{req.Text}, targetLangTag, &translate.Options{Format: translate.Text})
	} else {
		sourceLangTag, _ := language.Parse(req.SourceLang)
		translations, err = client.Translate(ctx, []string{req.Text}, targetLangTag, &translate.Options{
			Source: sourceLangTag,
			Format: translate.Text,
		})
	}
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("%w: no translation returned", ErrUnexpectedResponse)
	}

	result.TranslatedText = translations[0].Text
	if translations[0].Source != language.Und {
		result.DetectedSource = translations[0].Source.String()
	}
	return result, nil
}

// IsAvailable checks that a credentials file, when configured, can be read.
// Application default credentials are resolved by the client on first use.
func (s *GoogleCloudService) IsAvailable(ctx context.Context) error {
	if s.credentials == "" {
		return nil
	}
	if _, err := os.Stat(s.credentials); err != nil {
		return fmt.Errorf("credentials file: %w", err)
	}
	return nil
}
