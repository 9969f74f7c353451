package analyzer

import (
	"strings"
	"time"

	"docanalysis/sdk/go/types"
)

const (
	confIDField  = 95.0
	confIDAbsent = 99.0
)

// IdentityFields lists every field an identity document reports, in order.
var IdentityFields = []string{
	"FIRST_NAME", "LAST_NAME", "MIDDLE_NAME", "SUFFIX",
	"CITY_IN_ADDRESS", "ZIP_CODE_IN_ADDRESS", "STATE_IN_ADDRESS", "STATE_NAME",
	"DOCUMENT_NUMBER", "EXPIRATION_DATE", "DATE_OF_BIRTH", "DATE_OF_ISSUE",
	"ID_TYPE", "ENDORSEMENTS", "VETERAN", "RESTRICTIONS", "CLASS",
	"ADDRESS", "COUNTY", "PLACE_OF_BIRTH", "MRZ_CODE",
}

var identityLabels = map[string]string{
	"first name":      "FIRST_NAME",
	"given name":      "FIRST_NAME",
	"given names":     "FIRST_NAME",
	"last name":       "LAST_NAME",
	"surname":         "LAST_NAME",
	"family name":     "LAST_NAME",
	"middle name":     "MIDDLE_NAME",
	"suffix":          "SUFFIX",
	"city":            "CITY_IN_ADDRESS",
	"zip":             "ZIP_CODE_IN_ADDRESS",
	"zip code":        "ZIP_CODE_IN_ADDRESS",
	"postal code":     "ZIP_CODE_IN_ADDRESS",
	"state":           "STATE_IN_ADDRESS",
	"issuing state":   "STATE_NAME",
	"document number": "DOCUMENT_NUMBER",
	"license number":  "DOCUMENT_NUMBER",
	"passport number": "DOCUMENT_NUMBER",
	"dl":              "DOCUMENT_NUMBER",
	"exp":             "EXPIRATION_DATE",
	"expires":         "EXPIRATION_DATE",
	"expiration date": "EXPIRATION_DATE",
	"date of expiry":  "EXPIRATION_DATE",
	"dob":             "DATE_OF_BIRTH",
	"date of birth":   "DATE_OF_BIRTH",
	"iss":             "DATE_OF_ISSUE",
	"issued":          "DATE_OF_ISSUE",
	"date of issue":   "DATE_OF_ISSUE",
	"endorsements":    "ENDORSEMENTS",
	"end":             "ENDORSEMENTS",
	"veteran":         "VETERAN",
	"restrictions":    "RESTRICTIONS",
	"rstr":            "RESTRICTIONS",
	"class":           "CLASS",
	"address":         "ADDRESS",
	"county":          "COUNTY",
	"place of birth":  "PLACE_OF_BIRTH",
}

var dateFields = map[string]bool{
	"EXPIRATION_DATE": true,
	"DATE_OF_BIRTH":   true,
	"DATE_OF_ISSUE":   true,
}

var dateLayouts = []string{
	"01/02/2006", "1/2/2006", "2006-01-02", "01-02-2006", "02.01.2006",
	"02 Jan 2006", "2 Jan 2006", "Jan 2, 2006", "January 2, 2006", "02 JAN 2006",
}

// NormalizeDate parses a printed date into the ISO form reported for date
// fields.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04:05"), true
		}
	}
	return "", false
}

// Identity reads one identity document. index is its 1-based position in
// the request.
func Identity(doc *Doc, index int32) types.IdentityDocument {
	b := newBuilder(doc, "identity")
	values := map[string]string{}
	var mrz []string
	var all []string
	for pi := range doc.Pages {
		p := &doc.Pages[pi]
		b.text(p)
		st := analyze(p)
		for _, kv := range st.kvs {
			typ, ok := identityLabels[strings.Join(normWords(kv.key), " ")]
			if ok && kv.value != "" {
				if _, seen := values[typ]; !seen {
					values[typ] = kv.value
				}
			}
		}
		for _, l := range p.Lines {
			all = append(all, l.Text)
			if strings.Contains(l.Text, "<<") {
				mrz = append(mrz, strings.ReplaceAll(l.Text, " ", ""))
			}
		}
	}
	if len(mrz) > 0 {
		values["MRZ_CODE"] = strings.Join(mrz, "\n")
	}
	if _, ok := values["ID_TYPE"]; !ok {
		values["ID_TYPE"] = idType(strings.ToLower(strings.Join(all, " ")), len(mrz) > 0)
	}
	out := types.IdentityDocument{DocumentIndex: ptr(index), Blocks: b.blocks}
	for _, name := range IdentityFields {
		value, found := values[name]
		det := &types.AnalyzeIDDetections{Text: ptr(value), Confidence: ptr(float32(confIDAbsent))}
		if found {
			det.Confidence = ptr(float32(confIDField))
			if dateFields[name] {
				if iso, ok := NormalizeDate(value); ok {
					det.NormalizedValue = &types.NormalizedValue{Value: ptr(iso), ValueType: types.ValueTypeDate}
				}
			}
		}
		out.IdentityDocumentFields = append(out.IdentityDocumentFields, types.IdentityDocumentField{
			Type:           &types.AnalyzeIDDetections{Text: ptr(name)},
			ValueDetection: det,
		})
	}
	return out
}

func idType(text string, mrz bool) string {
	switch {
	case mrz || strings.Contains(text, "passport"):
		return "PASSPORT"
	case strings.Contains(text, "driver") || strings.Contains(text, "license"):
		return "DRIVER LICENSE FRONT"
	}
	return "OTHER"
}
