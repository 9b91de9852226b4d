package utils

import (
	"net/url"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// TableQRCode encodes the web ordering link for a table as a size x size PNG.
func TableQRCode(orderingURL, table string, size int) ([]byte, error) {
	link, err := url.Parse(orderingURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ordering url")
	}

	query := link.Query()
	query.Set("table", table)
	link.RawQuery = query.Encode()

	return qrcode.Encode(link.String(), qrcode.Medium, size)
}
