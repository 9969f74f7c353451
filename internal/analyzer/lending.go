package analyzer

import (
	"strconv"
	"strings"

	"docanalysis/sdk/go/types"
)

const (
	confClass       = 96.0
	confUnclass     = 60.0
	confLendingKey  = 94.0
	confLendingSign = 90.0

	// Unclassified pages match no catalog keyword.
	Unclassified = "UNCLASSIFIED"
)

// PageType is a lending catalog entry: pages mentioning any keyword are of
// that type.
type PageType struct {
	Type     string
	Keywords []string
}

// Lending classifies every page against catalog and extracts its fields.
func Lending(doc *Doc, catalog []PageType) ([]types.LendingResult, types.LendingSummary) {
	results := make([]types.LendingResult, 0, len(doc.Pages))
	pageTypes := make([]string, len(doc.Pages))
	signed := make([]bool, len(doc.Pages))
	wantsSignature := make([]bool, len(doc.Pages))
	for pi := range doc.Pages {
		p := &doc.Pages[pi]
		st := analyze(p)
		typ, conf := classify(p, catalog)
		pageTypes[pi] = typ
		signed[pi] = len(st.signatures) > 0
		wantsSignature[pi] = strings.Contains(strings.ToLower(p.Text()), "signature")
		res := types.LendingResult{
			Page: ptr(p.Number),
			PageClassification: &types.PageClassification{
				PageType:   []types.Prediction{{Value: ptr(typ), Confidence: ptr(conf)}},
				PageNumber: []types.Prediction{{Value: ptr(strconv.Itoa(pagePosition(pageTypes[:pi+1]))), Confidence: ptr(float32(confClass))}},
			},
		}
		if ex, ok := extract(doc, p, st, typ); ok {
			res.Extractions = []types.Extraction{ex}
		}
		results = append(results, res)
	}
	return results, summarize(doc, catalog, pageTypes, signed, wantsSignature)
}

// pagePosition is the 1-based position of the last page within its run of
// same-typed pages.
func pagePosition(seq []string) int {
	last := seq[len(seq)-1]
	n := 0
	for i := len(seq) - 1; i >= 0 && seq[i] == last; i-- {
		n++
	}
	return n
}

func classify(p *Page, catalog []PageType) (string, float32) {
	text := strings.ToLower(p.Text())
	best, hits := Unclassified, 0
	for _, pt := range catalog {
		n := 0
		for _, kw := range pt.Keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				n++
			}
		}
		if n > hits {
			best, hits = pt.Type, n
		}
	}
	if hits == 0 {
		return Unclassified, confUnclass
	}
	return best, confClass
}

func extract(doc *Doc, p *Page, st *structure, typ string) (types.Extraction, bool) {
	switch typ {
	case Unclassified:
		return types.Extraction{}, false
	case "INVOICES", "RECEIPTS":
		single := &Doc{Format: doc.Format, key: doc.key + "/" + strconv.Itoa(int(p.Number)), Pages: []Page{*p}}
		ed := Expense(single)[0]
		return types.Extraction{ExpenseDocument: &ed}, true
	case "IDENTITY_DOCUMENT":
		single := &Doc{Format: doc.Format, key: doc.key + "/" + strconv.Itoa(int(p.Number)), Pages: []Page{*p}}
		id := Identity(single, 1)
		return types.Extraction{IdentityDocument: &id}, true
	}
	ld := &types.LendingDocument{}
	prefix := strings.ReplaceAll(typ, " ", "_")
	for _, kv := range st.kvs {
		l := &p.Lines[kv.line]
		keyBox, _ := tokenBox(l, kv.keyTok)
		valueBox, _ := tokenBox(l, kv.valueTok)
		value := types.LendingDetection{Text: ptr(kv.value), Geometry: geometry(valueBox), Confidence: ptr(kv.confidence())}
		if kv.selection >= 0 {
			value.SelectionStatus = types.SelectionStatusNotSelected
			if l.tokens[kv.selection].Kind == tokenSelected {
				value.SelectionStatus = types.SelectionStatusSelected
			}
		}
		ld.LendingFields = append(ld.LendingFields, types.LendingField{
			Type:            ptr(prefix + "_" + strings.ToUpper(strings.Join(normWords(kv.key), "_"))),
			KeyDetection:    &types.LendingDetection{Text: ptr(kv.key), Geometry: geometry(keyBox), Confidence: ptr(float32(confLendingKey))},
			ValueDetections: []types.LendingDetection{value},
		})
	}
	for _, li := range st.signatures {
		ld.SignatureDetections = append(ld.SignatureDetections, types.SignatureDetection{
			Confidence: ptr(float32(confLendingSign)),
			Geometry:   geometry(p.Lines[li].Box),
		})
	}
	return types.Extraction{LendingDocument: ld}, true
}

// summarize groups consecutive pages of one type into split documents.
func summarize(doc *Doc, catalog []PageType, pageTypes []string, signed, wantsSignature []bool) types.LendingSummary {
	var sum types.LendingSummary
	byType := map[string]int{}
	for pi, typ := range pageTypes {
		gi, ok := byType[typ]
		if !ok {
			gi = len(sum.DocumentGroups)
			byType[typ] = gi
			sum.DocumentGroups = append(sum.DocumentGroups, types.DocumentGroup{Type: ptr(typ)})
		}
		g := &sum.DocumentGroups[gi]
		num := doc.Pages[pi].Number
		if pi > 0 && pageTypes[pi-1] == typ && len(g.SplitDocuments) > 0 {
			last := &g.SplitDocuments[len(g.SplitDocuments)-1]
			last.Pages = append(last.Pages, num)
		} else {
			g.SplitDocuments = append(g.SplitDocuments, types.SplitDocument{
				Index: ptr(int32(len(g.SplitDocuments) + 1)),
				Pages: []int32{num},
			})
		}
		switch {
		case signed[pi]:
			g.DetectedSignatures = append(g.DetectedSignatures, types.DetectedSignature{Page: ptr(num)})
		case wantsSignature[pi]:
			g.UndetectedSignatures = append(g.UndetectedSignatures, types.UndetectedSignature{Page: ptr(num)})
		}
	}
	for _, pt := range catalog {
		if _, ok := byType[pt.Type]; !ok {
			sum.UndetectedDocumentTypes = append(sum.UndetectedDocumentTypes, pt.Type)
		}
	}
	return sum
}
