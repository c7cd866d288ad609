// Package content holds the fixed portfolio copy: profile, experience and
// projects. Everything here is defined at compile time and never mutated.
package content

import "strings"

// ExperienceRecord is one entry in the experience list.
type ExperienceRecord struct {
	Title        string
	Organization string
	Period       string
	Description  string
}

// ProjectRecord is one entry in the project list.
type ProjectRecord struct {
	Title      string
	EventLabel string
	URL        string
}

// TypedStep is one phrase of the hero's typing animation and how long it
// stays on screen before the next one is typed.
type TypedStep struct {
	Text    string
	PauseMS int
}

// Contact is the content of the "Get in touch" section.
type Contact struct {
	Heading      string
	Lede         string
	Email        string
	Phone        string
	PhoneDisplay string
}

// MailtoHref returns the href that opens the default mail handler.
func (c Contact) MailtoHref() string {
	return "mailto:" + c.Email
}

// TelHref returns the href that opens the default dialer. Spaces and dashes
// in the phone number are stripped.
func (c Contact) TelHref() string {
	return "tel:" + strings.NewReplacer(" ", "", "-", "").Replace(c.Phone)
}

// Profile is everything rendered on the page.
type Profile struct {
	Name       string
	Mark       string
	Headline   string
	Typed      []TypedStep
	Currently  string
	BasedOn    string
	Focus      []string
	About      string
	Experience []ExperienceRecord
	Projects   []ProjectRecord
	Contact    Contact
}

// Default returns the portfolio profile. The slices are fresh copies so a
// caller cannot mutate the package-level data.
func Default() Profile {
	return Profile{
		Name:       Name,
		Mark:       "TM",
		Headline:   Headline,
		Typed:      append([]TypedStep(nil), typed...),
		Currently:  Currently,
		BasedOn:    BasedOn,
		Focus:      append([]string(nil), focus...),
		About:      AboutMe,
		Experience: append([]ExperienceRecord(nil), experience...),
		Projects:   append([]ProjectRecord(nil), projects...),
		Contact:    contact,
	}
}
