package models

// Well-known IDs of singleton settings documents.
const (
	SettingsBusinessHoursID = "businessHours"
	SettingsThemeID         = "theme"
	SettingsHeroBannerID    = "heroBanner"
	SettingsSocialLinksID   = "socialLinks"
)

// BusinessHours is the singleton opening-hours document. Absent config means
// booking is disabled for every day.
type BusinessHours struct {
	ID          string `bson:"id" json:"-"`
	StartTime   string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string `bson:"endTime" json:"endTime"`     // "HH:MM"
	WorkingDays []int  `bson:"workingDays" json:"workingDays"` // 0=Sunday ... 6=Saturday
}

// WorksOn reports whether the salon opens on the given weekday index.
func (b *BusinessHours) WorksOn(weekday int) bool {
	for _, d := range b.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// HSLColor is a hue/saturation/lightness triple as used by the frontend theme.
type HSLColor struct {
	H float64 `bson:"h" json:"h"` // 0-360
	S float64 `bson:"s" json:"s"` // 0-100
	L float64 `bson:"l" json:"l"` // 0-100
}

// Theme is the singleton presentation-colors document.
type Theme struct {
	ID        string   `bson:"id" json:"-"`
	Primary   HSLColor `bson:"primary" json:"primary"`
	Secondary HSLColor `bson:"secondary" json:"secondary"`
	Accent    HSLColor `bson:"accent" json:"accent"`
}

// HeroBanner is the singleton landing-page banner document.
type HeroBanner struct {
	ID       string `bson:"id" json:"-"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Enabled  bool   `bson:"enabled" json:"enabled"`
}

// SocialLinks is the singleton social-profiles document.
type SocialLinks struct {
	ID        string `bson:"id" json:"-"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	WhatsApp  string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

// GalleryImage is one entry of the salon's public gallery.
type GalleryImage struct {
	ID       string `bson:"id" json:"id"`
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`
	Position int    `bson:"position" json:"position"`
}
