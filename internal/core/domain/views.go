package domain

// AdView is the listing entry any viewer may see.
type AdView struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        Money  `json:"price"`
	OwnerName    string `json:"ownerName"`
	CreatedAt    int64  `json:"createdAt"`
	Mine         bool   `json:"mine"`
	HasResponded bool   `json:"hasResponded"`
}

// OwnerAdView is the variant served to the ad's owner. The response counter
// is private to the owner, so it lives on a separate view type instead of an
// optional field on AdView.
type OwnerAdView struct {
	AdView
	ResponsesCount int `json:"responsesCount"`
}

// AdListEntry is either an AdView or an OwnerAdView, selected per viewer at
// serialization time.
type AdListEntry interface {
	adListEntry()
}

func (AdView) adListEntry()      {}
func (OwnerAdView) adListEntry() {}

// RespondedAdView is the shape returned by the my-responses listing. It
// carries no "mine" flag: a responder is never the owner.
type RespondedAdView struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        Money  `json:"price"`
	OwnerName    string `json:"ownerName"`
	CreatedAt    int64  `json:"createdAt"`
	HasResponded bool   `json:"hasResponded"`
}

// Responder identifies a user who responded to an advertisement.
type Responder struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
