package domain

import (
	"fmt"
	"strings"
)

type ContentType int

const (
	ProductDescription ContentType = iota
	SocialPost
	Email

	NumContentTypes = int(Email) + 1
)

type Tone int

const (
	Professional Tone = iota
	Playful
	Luxury
	Casual

	NumTones = int(Casual) + 1
)

type Language int

const (
	English Language = iota
	French

	NumLanguages = int(French) + 1
)

var (
	contentTypeLabels = [NumContentTypes]string{"Product Description", "Social Post", "Email"}
	toneLabels        = [NumTones]string{"Professional", "Playful", "Luxury", "Casual"}
	languageLabels    = [NumLanguages]string{"English", "French"}
)

func AllContentTypes() []ContentType { return []ContentType{ProductDescription, SocialPost, Email} }
func AllTones() []Tone               { return []Tone{Professional, Playful, Luxury, Casual} }
func AllLanguages() []Language       { return []Language{English, French} }

func (c ContentType) Valid() bool { return c >= 0 && int(c) < NumContentTypes }
func (t Tone) Valid() bool        { return t >= 0 && int(t) < NumTones }
func (l Language) Valid() bool    { return l >= 0 && int(l) < NumLanguages }

func (c ContentType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ContentType(%d)", int(c))
	}
	return contentTypeLabels[c]
}

func (t Tone) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneLabels[t]
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageLabels[l]
}

func ParseContentType(raw string) (ContentType, error) {
	idx, ok := matchLabel(raw, contentTypeLabels[:])
	if !ok {
		return 0, WrapError(ErrInvalidInput, "parse content type", fmt.Errorf("unknown content type %q", raw))
	}
	return ContentType(idx), nil
}

func ParseTone(raw string) (Tone, error) {
	idx, ok := matchLabel(raw, toneLabels[:])
	if !ok {
		return 0, WrapError(ErrInvalidInput, "parse tone", fmt.Errorf("unknown tone %q", raw))
	}
	return Tone(idx), nil
}

// ParseLanguage treats an empty value as English.
func ParseLanguage(raw string) (Language, error) {
	if strings.TrimSpace(raw) == "" {
		return English, nil
	}
	idx, ok := matchLabel(raw, languageLabels[:])
	if !ok {
		return 0, WrapError(ErrInvalidInput, "parse language", fmt.Errorf("unknown language %q", raw))
	}
	return Language(idx), nil
}

// matchLabel accepts the label in any case, or its snake_case slug.
func matchLabel(raw string, labels []string) (int, bool) {
	needle := normalizeLabel(raw)
	if needle == "" {
		return 0, false
	}
	for i, label := range labels {
		if normalizeLabel(label) == needle {
			return i, true
		}
	}
	return 0, false
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func (c ContentType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (t Tone) MarshalText() ([]byte, error)        { return []byte(t.String()), nil }
func (l Language) MarshalText() ([]byte, error)    { return []byte(l.String()), nil }

func (c *ContentType) UnmarshalText(b []byte) error {
	v, err := ParseContentType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (t *Tone) UnmarshalText(b []byte) error {
	v, err := ParseTone(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (l *Language) UnmarshalText(b []byte) error {
	v, err := ParseLanguage(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Selection is the user's choice of format, register and language.
type Selection struct {
	ContentType ContentType `json:"content_type"`
	Tone        Tone        `json:"tone"`
	Language    Language    `json:"language"`
}

func ParseSelection(contentType, tone, language string) (Selection, error) {
	ct, err := ParseContentType(contentType)
	if err != nil {
		return Selection{}, err
	}
	tn, err := ParseTone(tone)
	if err != nil {
		return Selection{}, err
	}
	lang, err := ParseLanguage(language)
	if err != nil {
		return Selection{}, err
	}
	return Selection{ContentType: ct, Tone: tn, Language: lang}, nil
}

func (s Selection) Validate() error {
	if !s.ContentType.Valid() || !s.Tone.Valid() || !s.Language.Valid() {
		return WrapError(ErrInvalidInput, "validate selection", fmt.Errorf("selection out of range: %d/%d/%d", s.ContentType, s.Tone, s.Language))
	}
	return nil
}
