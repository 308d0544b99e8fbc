package signature

import "strings"

// SocialTag selects how the artist name is rewritten into a social handle.
type SocialTag int

const (
	None SocialTag = iota
	Facebook
	Tumblr
	Instagram
	Twitter
	Reddit
	DeviantArt
)

var socialNames = [...]string{
	None:       "None",
	Facebook:   "Facebook",
	Tumblr:     "Tumblr",
	Instagram:  "Instagram",
	Twitter:    "Twitter",
	Reddit:     "Reddit",
	DeviantArt: "DeviantArt",
}

func (t SocialTag) String() string {
	if t < 0 || int(t) >= len(socialNames) {
		return socialNames[None]
	}
	return socialNames[t]
}

// ParseSocialTag maps a tag name to its value. Unknown names yield None.
func ParseSocialTag(s string) SocialTag {
	for t, name := range socialNames {
		if name == s {
			return SocialTag(t)
		}
	}
	return None
}

// SocialTags returns every tag, None first.
func SocialTags() []SocialTag {
	return []SocialTag{None, Facebook, Tumblr, Instagram, Twitter, Reddit, DeviantArt}
}

// ApplySocialTag produces the final signature text for name.
// Only the ASCII space is treated as a space.
func ApplySocialTag(name string, tag SocialTag) string {
	switch tag {
	case Facebook:
		return "Facebook: @" + name
	case Tumblr:
		return "Tumblr: @" + strings.ToLower(strings.ReplaceAll(name, " ", ""))
	case Instagram, Twitter:
		return tag.String() + ": @" + strings.ReplaceAll(name, " ", "_")
	case Reddit:
		return "Reddit: u/" + strings.ReplaceAll(name, " ", "")
	case DeviantArt:
		return "DeviantArt: " + name
	default:
		return name
	}
}
