// Package translate defines the translation collaborator used to turn
// Arabic player and club input into the English names the upstream site
// indexes.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mercato-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator uses the public gtx endpoint. It is best effort: callers
// are expected to treat failures as non-fatal and continue with the
// untranslated text.
type GoogleTranslator struct {
	http *resty.Client
}

func NewGoogleTranslator() GoogleTranslator {
	client := resty.New()
	client.SetTimeout(time.Second * 10)
	telemetry.InstrumentResty(client, "lib/translate/http")
	return GoogleTranslator{http: client}
}

func (t GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	res, err := t.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     source,
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get(googleEndpoint)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("translate %q: status %d", text, res.StatusCode())
	}
	return parseGtxResponse(res.Body())
}

// The gtx endpoint answers with nested arrays: the first element holds one
// [translated, original, ...] tuple per sentence.
func parseGtxResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	err := json.Unmarshal(body, &payload)
	if err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var sentences [][]json.RawMessage
	err = json.Unmarshal(payload[0], &sentences)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var translated string
		err = json.Unmarshal(sentence[0], &translated)
		if err != nil {
			return "", err
		}
		out.WriteString(translated)
	}

	translated := strings.TrimSpace(out.String())
	if translated == "" {
		return "", fmt.Errorf("no translation in response")
	}
	return translated, nil
}
