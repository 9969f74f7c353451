package analyzer

import (
	"slices"
	"strings"

	"docanalysis/sdk/go/types"
)

const (
	confExpenseType  = 99.0
	confExpenseLabel = 95.0
	confExpenseValue = 94.0
	confCurrency     = 95.0
)

// expenseLabels maps normalized label words to expense field types. Longer
// labels are checked first.
var expenseLabels = []struct {
	label string
	typ   string
	group string
}{
	{"invoice number", "INVOICE_RECEIPT_ID", ""},
	{"receipt number", "INVOICE_RECEIPT_ID", ""},
	{"invoice date", "INVOICE_RECEIPT_DATE", ""},
	{"receipt date", "INVOICE_RECEIPT_DATE", ""},
	{"amount due", "AMOUNT_DUE", ""},
	{"balance due", "AMOUNT_DUE", ""},
	{"grand total", "TOTAL", ""},
	{"sales tax", "TAX", ""},
	{"due date", "DUE_DATE", ""},
	{"bill to", "RECEIVER_NAME", "RECEIVER"},
	{"ship to", "RECEIVER_ADDRESS", "RECEIVER"},
	{"po number", "PO_NUMBER", ""},
	{"subtotal", "SUBTOTAL", ""},
	{"sub total", "SUBTOTAL", ""},
	{"total", "TOTAL", ""},
	{"tax", "TAX", ""},
	{"vat", "TAX", ""},
	{"tip", "GRATUITY", ""},
	{"discount", "DISCOUNT", ""},
	{"vendor", "VENDOR_NAME", "VENDOR"},
	{"merchant", "VENDOR_NAME", "VENDOR"},
	{"seller", "VENDOR_NAME", "VENDOR"},
	{"from", "VENDOR_NAME", "VENDOR"},
	{"address", "VENDOR_ADDRESS", "VENDOR"},
	{"phone", "VENDOR_PHONE", "VENDOR"},
	{"customer", "RECEIVER_NAME", "RECEIVER"},
	{"invoice", "INVOICE_RECEIPT_ID", ""},
	{"date", "INVOICE_RECEIPT_DATE", ""},
}

var lineItemLabels = []struct{ label, typ string }{
	{"unit price", "UNIT_PRICE"},
	{"description", "ITEM"},
	{"item", "ITEM"},
	{"product", "ITEM"},
	{"qty", "QUANTITY"},
	{"quantity", "QUANTITY"},
	{"price", "UNIT_PRICE"},
	{"amount", "PRICE"},
	{"total", "PRICE"},
}

var currencySymbols = []struct{ sym, code string }{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₹", "INR"},
}

func expenseType(label string) (string, string) {
	norm := strings.Join(normWords(label), " ")
	for _, l := range expenseLabels {
		if norm == l.label || strings.HasPrefix(norm, l.label+" ") || strings.HasSuffix(norm, " "+l.label) {
			return l.typ, l.group
		}
	}
	return "OTHER", ""
}

func lineItemType(header string) string {
	norm := strings.Join(normWords(header), " ")
	for _, l := range lineItemLabels {
		if strings.Contains(norm, l.label) {
			return l.typ
		}
	}
	return "OTHER"
}

func currency(value string) *types.ExpenseCurrency {
	for _, c := range currencySymbols {
		if strings.Contains(value, c.sym) {
			return &types.ExpenseCurrency{Code: ptr(c.code), Confidence: ptr(float32(confCurrency))}
		}
	}
	upper := strings.ToUpper(value)
	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "INR"} {
		if strings.Contains(upper, code) {
			return &types.ExpenseCurrency{Code: ptr(code), Confidence: ptr(float32(confCurrency))}
		}
	}
	return nil
}

func detection(text string, box Box, conf float32) *types.ExpenseDetection {
	return &types.ExpenseDetection{Text: ptr(text), Geometry: geometry(box), Confidence: ptr(conf)}
}

// Expense returns one expense document per page.
func Expense(doc *Doc) []types.ExpenseDocument {
	b := newBuilder(doc, "expense")
	out := make([]types.ExpenseDocument, 0, len(doc.Pages))
	for pi := range doc.Pages {
		p := &doc.Pages[pi]
		start := len(b.blocks)
		b.text(p)
		st := analyze(p)
		ed := types.ExpenseDocument{
			ExpenseIndex:   ptr(int32(pi + 1)),
			SummaryFields:  expenseSummary(b, st),
			LineItemGroups: lineItemGroups(st),
		}
		ed.Blocks = append([]types.Block{}, b.blocks[start:]...)
		out = append(out, ed)
	}
	return out
}

func expenseSummary(b *builder, st *structure) []types.ExpenseField {
	num := st.page.Number
	groups := map[string]string{}
	groupID := func(name string) string {
		if id, ok := groups[name]; ok {
			return id
		}
		groups[name] = b.id()
		return groups[name]
	}
	var fields []types.ExpenseField
	vendor := false
	for _, kv := range st.kvs {
		l := &st.page.Lines[kv.line]
		typ, group := expenseType(kv.key)
		keyBox, _ := tokenBox(l, kv.keyTok)
		valueBox, ok := tokenBox(l, kv.valueTok)
		if !ok {
			valueBox = Box{Left: keyBox.right(), Top: keyBox.Top, Height: keyBox.Height}
		}
		f := types.ExpenseField{
			Type:           &types.ExpenseType{Text: ptr(typ), Confidence: ptr(float32(confExpenseType))},
			LabelDetection: detection(kv.key, keyBox, confExpenseLabel),
			ValueDetection: detection(kv.value, valueBox, kv.confidence()),
			PageNumber:     ptr(num),
			Currency:       currency(kv.value),
		}
		if group != "" {
			f.GroupProperties = []types.ExpenseGroupProperty{{Types: []string{group}, Id: ptr(groupID(group))}}
		}
		if typ == "VENDOR_NAME" {
			vendor = true
		}
		fields = append(fields, f)
	}
	if vendor {
		return fields
	}
	// A letterhead names the vendor when no field does.
	for i := range st.page.Lines {
		if st.kvLine[i] || st.inTable[i] || slices.Contains(st.signatures, i) {
			continue
		}
		l := &st.page.Lines[i]
		f := types.ExpenseField{
			Type:            &types.ExpenseType{Text: ptr("VENDOR_NAME"), Confidence: ptr(float32(confExpenseType))},
			ValueDetection:  detection(l.Text, l.Box, confExpenseValue),
			PageNumber:      ptr(num),
			GroupProperties: []types.ExpenseGroupProperty{{Types: []string{"VENDOR"}, Id: ptr(groupID("VENDOR"))}},
		}
		return append([]types.ExpenseField{f}, fields...)
	}
	return fields
}

func lineItemGroups(st *structure) []types.LineItemGroup {
	var groups []types.LineItemGroup
	for _, t := range st.tables {
		if len(t.rows) < 2 {
			continue
		}
		header := t.rows[0].cells
		g := types.LineItemGroup{LineItemGroupIndex: ptr(int32(len(groups) + 1))}
		for _, r := range t.rows[1:] {
			l := &st.page.Lines[r.line]
			var item types.LineItemFields
			var texts []string
			for ci, c := range r.cells {
				if c.text == "" {
					continue
				}
				texts = append(texts, c.text)
				f := types.ExpenseField{
					Type:           &types.ExpenseType{Text: ptr("OTHER"), Confidence: ptr(float32(confExpenseType))},
					ValueDetection: detection(c.text, c.box, confExpenseValue),
					PageNumber:     ptr(st.page.Number),
					Currency:       currency(c.text),
				}
				if ci < len(header) {
					f.Type.Text = ptr(lineItemType(header[ci].text))
					f.LabelDetection = detection(header[ci].text, header[ci].box, confExpenseLabel)
				}
				item.LineItemExpenseFields = append(item.LineItemExpenseFields, f)
			}
			item.LineItemExpenseFields = append(item.LineItemExpenseFields, types.ExpenseField{
				Type:           &types.ExpenseType{Text: ptr("EXPENSE_ROW"), Confidence: ptr(float32(confExpenseType))},
				ValueDetection: detection(strings.Join(texts, " "), l.Box, confExpenseValue),
				PageNumber:     ptr(st.page.Number),
			})
			g.LineItems = append(g.LineItems, item)
		}
		groups = append(groups, g)
	}
	return groups
}
