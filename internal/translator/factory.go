package translator

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Backend names accepted by New.
const (
	BackendGTX   = "gtx"
	BackendCloud = "cloud"
)

// New builds the translation service selected by backend.
func New(backend string, cfg ServiceConfig, logger *logrus.Logger) (TranslationService, error) {
	switch backend {
	case "", BackendGTX:
		return NewGTXService(cfg, logger), nil
	case BackendCloud:
		return NewGoogleCloudService(cfg), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}
