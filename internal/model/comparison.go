package model

// ComparisonItem is the subset of a Product shown side by side on the
// comparison page.
type ComparisonItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	InStock       bool     `json:"inStock"`
}

// NewComparisonItem projects a product onto its comparison fields.
// Slices and the original price are copied so the item does not alias the
// catalogue record.
func NewComparisonItem(p Product) ComparisonItem {
	item := ComparisonItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Rating:   p.Rating,
		Reviews:  p.Reviews,
		Features: cloneStrings(p.Features),
		Sizes:    cloneStrings(p.Sizes),
		Colors:   cloneStrings(p.Colors),
		InStock:  p.InStock,
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		item.OriginalPrice = &original
	}
	return item
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ShareRequest represents the request payload for creating a share link.
type ShareRequest struct {
	Items []string `json:"items"`
}

// ShareResponse represents a created share link.
type ShareResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ItemCount int    `json:"itemCount"`
}

// ViewState is the state of a shared comparison view.
type ViewState string

// A shared comparison starts loading on the client and ends in exactly one
// of the terminal states.
const (
	ViewStateLoading ViewState = "loading"
	ViewStateSuccess ViewState = "success"
	ViewStateError   ViewState = "error"
)

// ShareLinkErrorMessage is shown for every shared comparison that cannot be
// displayed, whether the token was malformed or nothing resolved.
const ShareLinkErrorMessage = "invalid share link or no items found"

// ComparisonView is the payload handed to the comparison page renderer.
type ComparisonView struct {
	State   ViewState        `json:"state"`
	Items   []ComparisonItem `json:"items"`
	Message string           `json:"message,omitempty"`
}

// NewSuccessView returns a terminal success view for the given items.
func NewSuccessView(items []ComparisonItem) *ComparisonView {
	if items == nil {
		items = []ComparisonItem{}
	}
	return &ComparisonView{State: ViewStateSuccess, Items: items}
}

// NewErrorView returns a terminal error view with an empty item list.
func NewErrorView() *ComparisonView {
	return &ComparisonView{
		State:   ViewStateError,
		Items:   []ComparisonItem{},
		Message: ShareLinkErrorMessage,
	}
}
