package booking

import (
	"net/url"
	"path"
	"strconv"

	"shalfa/models"
)

// BuildEngineURL composes the external booking engine search URL for a
// validated draft. It performs no I/O; the caller hands the URL to
// whatever opens external resources.
func BuildEngineURL(base string, draft models.BookingDraft) string {
	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Scheme: "https", Host: base}
	}
	u.Path = path.Join(u.Path, "search")

	q := url.Values{}
	q.Set("checkInDate", draft.CheckIn)
	q.Set("checkOutDate", draft.CheckOut)
	q.Set("adults", strconv.Itoa(draft.Guests))
	u.RawQuery = q.Encode()

	return u.String()
}
