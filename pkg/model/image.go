package model

import "strings"

// DefaultLanguage is the language tag used when none is specified for an asset
const DefaultLanguage = "en-US"

// ImageType identifies an image slot on the store listing
type ImageType string

// Recognized image slots
const (
	FeatureGraphic       ImageType = "featureGraphic"
	Icon                 ImageType = "icon"
	PhoneScreenshots     ImageType = "phoneScreenshots"
	PromoGraphic         ImageType = "promoGraphic"
	SevenInchScreenshots ImageType = "sevenInchScreenshots"
	TenInchScreenshots   ImageType = "tenInchScreenshots"
	TvBanner             ImageType = "tvBanner"
	TvScreenshots        ImageType = "tvScreenshots"
	WearScreenshots      ImageType = "wearScreenshots"
)

// ImageTypes lists all recognized image slots
var ImageTypes = []ImageType{
	FeatureGraphic,
	Icon,
	PhoneScreenshots,
	PromoGraphic,
	SevenInchScreenshots,
	TenInchScreenshots,
	TvBanner,
	TvScreenshots,
	WearScreenshots,
}

// ParseImageType validates an image slot
func ParseImageType(s string) (ImageType, error) {
	for _, it := range ImageTypes {
		if string(it) == s {
			return it, nil
		}
	}
	names := make([]string, 0, len(ImageTypes))
	for _, it := range ImageTypes {
		names = append(names, string(it))
	}
	return "", ErrInvalidImageType.WrapMessage("%q is not one of %s", s, strings.Join(names, ", "))
}

func (i ImageType) String() string {
	return string(i)
}

// Asset is an image to upload into a store listing slot
type Asset struct {
	Path      string    `json:"path" yaml:"path"`
	ImageType ImageType `json:"imageType" yaml:"imageType"`
	Language  string    `json:"language" yaml:"language"`
}

// NewAsset builds an asset, with the default language when none is given
func NewAsset(imageType ImageType, location, language string) Asset {
	if language == "" {
		language = DefaultLanguage
	}
	return Asset{
		Path:      location,
		ImageType: imageType,
		Language:  language,
	}
}
