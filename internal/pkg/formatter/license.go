package formatter

import (
	"fmt"

	"github.com/futig/babyname/internal/entity"
	"github.com/unidoc/unioffice/common/license"
)

// LoadDOCXLicense activates unioffice with a metered API key.
// Documents cannot be saved without it.
func LoadDOCXLicense(key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s", entity.ErrFormatUnavailable, "unioffice key is not set")
	}
	if err := license.SetMeteredKey(key); err != nil {
		return fmt.Errorf("%w: load unioffice key: %v", entity.ErrFormatUnavailable, err)
	}
	return nil
}
