package analyzer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"docanalysis/sdk/go/blocks"
	"docanalysis/sdk/go/types"
)

const invoice = `ACME Supplies Inc
Invoice Number: INV-1001
Date: 03/15/2024
Paid: [x]
Rush: [ ]

| Item | Qty | Price |
|------|-----|-------|
| Widget | 2 | $10.00 |
| Gadget | 1 | $5.50 |

Total: $25.50
/s/ Jane Roe
`

func mustLoad(t *testing.T, s string) *Doc {
	t.Helper()
	doc, err := Load([]byte(s))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func countType(bs []types.Block, bt types.BlockType) int {
	n := 0
	for _, b := range bs {
		if b.BlockType == bt {
			n++
		}
	}
	return n
}

func TestLoadText(t *testing.T) {
	doc := mustLoad(t, invoice)
	if doc.Format != FormatText || len(doc.Pages) != 1 {
		t.Fatalf("unexpected doc %s with %d pages", doc.Format, len(doc.Pages))
	}
	if got := len(doc.Pages[0].Lines); got != 11 {
		t.Fatalf("expected 11 lines, got %d", got)
	}
	for _, l := range doc.Pages[0].Lines {
		b := l.Box
		if b.Left < 0 || b.Top < 0 || b.right() > 1 || b.bottom() > 1 {
			t.Fatalf("line %q box out of page: %+v", l.Text, b)
		}
	}
	paged := mustLoad(t, "one\fpage two\fthree")
	if len(paged.Pages) != 3 || paged.Pages[1].Lines[0].Text != "page two" || paged.Pages[2].Number != 3 {
		t.Fatalf("unexpected pages %+v", paged.Pages)
	}
}

func TestLoadRejectsUnknownFormats(t *testing.T) {
	if _, err := Load([]byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff}); !errors.Is(err, ErrUnsupportedDocument) {
		t.Fatalf("expected ErrUnsupportedDocument, got %v", err)
	}
	if _, err := Load([]byte("%PDF-1.4\nthis is not a pdf body")); !errors.Is(err, ErrBadDocument) {
		t.Fatalf("expected ErrBadDocument, got %v", err)
	}
	if _, err := Load(nil); !errors.Is(err, ErrBadDocument) {
		t.Fatalf("expected ErrBadDocument for empty input, got %v", err)
	}
}

func TestImagesHaveNoTextLayer(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	doc, err := Load(png)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bs := DetectText(doc)
	if len(bs) != 1 || bs[0].BlockType != types.BlockTypePage {
		t.Fatalf("expected a single PAGE block, got %d blocks", len(bs))
	}
}

func TestDetectText(t *testing.T) {
	bs := DetectText(mustLoad(t, invoice))
	if n := countType(bs, types.BlockTypeLine); n != 11 {
		t.Fatalf("expected 11 lines, got %d", n)
	}
	g := blocks.New(bs)
	if d := g.Dangling(); len(d) != 0 {
		t.Fatalf("dangling ids %v", d)
	}
	lines := g.Lines(1)
	if got := g.Text(lines[1]); got != "Invoice Number: INV-1001" {
		t.Fatalf("line text %q", got)
	}
	words := g.Children(lines[1])
	if len(words) != 3 || words[2].GetText() != "INV-1001" || words[2].TextType != types.TextTypePrinted {
		t.Fatalf("unexpected words %v", words)
	}
	if countType(bs, types.BlockTypeKeyValueSet) != 0 || countType(bs, types.BlockTypeSelectionElement) != 0 {
		t.Fatal("text detection must not emit form blocks")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	opts := Options{Features: []types.FeatureType{types.FeatureTypeForms, types.FeatureTypeTables}}
	a := Analyze(mustLoad(t, invoice), opts)
	b := Analyze(mustLoad(t, invoice), opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical blocks for the same document")
	}
}

func TestAnalyzeForms(t *testing.T) {
	bs := Analyze(mustLoad(t, invoice), Options{Features: []types.FeatureType{types.FeatureTypeForms}})
	g := blocks.New(bs)
	kvs := g.KeyValues()
	if len(kvs) != 5 {
		t.Fatalf("expected 5 form fields, got %d", len(kvs))
	}
	if kvs[0].KeyText != "Invoice Number:" || kvs[0].Text != "INV-1001" {
		t.Fatalf("unexpected first field %q=%q", kvs[0].KeyText, kvs[0].Text)
	}
	if kvs[2].Selected == nil || !*kvs[2].Selected {
		t.Fatalf("expected Paid to be selected, got %+v", kvs[2])
	}
	if kvs[3].Selected == nil || *kvs[3].Selected {
		t.Fatalf("expected Rush to be unselected, got %+v", kvs[3])
	}
	if d := g.Dangling(); len(d) != 0 {
		t.Fatalf("dangling ids %v", d)
	}
	if countType(bs, types.BlockTypeTable) != 0 {
		t.Fatal("tables not requested")
	}
}

func TestAnalyzeTables(t *testing.T) {
	bs := Analyze(mustLoad(t, invoice), Options{Features: []types.FeatureType{types.FeatureTypeTables}})
	tables := blocks.New(bs).Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	want := [][]string{{"Item", "Qty", "Price"}, {"Widget", "2", "$10.00"}, {"Gadget", "1", "$5.50"}}
	if !reflect.DeepEqual(tables[0].Rows, want) {
		t.Fatalf("rows %v", tables[0].Rows)
	}
	if !reflect.DeepEqual(tables[0].Headers, want[0]) {
		t.Fatalf("headers %v", tables[0].Headers)
	}
}

func TestAnalyzeQueries(t *testing.T) {
	opts := Options{
		Features: []types.FeatureType{types.FeatureTypeQueries},
		Queries: []types.Query{
			{Text: ptr("What is the invoice number?"), Alias: ptr("INVOICE_ID")},
			{Text: ptr("What is the total?")},
			{Text: ptr("Who is the shipper?")},
			{Text: ptr("What is the price?"), Alias: ptr("PRICE")},
		},
	}
	g := blocks.New(Analyze(mustLoad(t, invoice), opts))
	if got, ok := g.Answer("INVOICE_ID"); !ok || got != "INV-1001" {
		t.Fatalf("invoice id answer %q %v", got, ok)
	}
	if got, ok := g.Answer("What is the total?"); !ok || got != "$25.50" {
		t.Fatalf("total answer %q %v", got, ok)
	}
	if _, ok := g.Answer("Who is the shipper?"); ok {
		t.Fatal("expected no answer for unmatched query")
	}
	if got, ok := g.Answer("PRICE"); !ok || got != "$10.00" {
		t.Fatalf("table answer %q %v", got, ok)
	}
	if n := len(g.QueryAnswers()); n != 4 {
		t.Fatalf("expected a QUERY block per query, got %d", n)
	}
}

func TestAdapterRaisesAnswerConfidence(t *testing.T) {
	q := []types.Query{{Text: ptr("total")}}
	plain := blocks.New(Analyze(mustLoad(t, invoice), Options{Features: []types.FeatureType{types.FeatureTypeQueries}, Queries: q}))
	adapted := blocks.New(Analyze(mustLoad(t, invoice), Options{
		Features:     []types.FeatureType{types.FeatureTypeQueries},
		Queries:      q,
		AdapterPages: func(int32) bool { return true },
	}))
	p := plain.QueryAnswers()[0].Answers[0].GetConfidence()
	a := adapted.QueryAnswers()[0].Answers[0].GetConfidence()
	if a <= p {
		t.Fatalf("expected adapter confidence %v above %v", a, p)
	}
}

func TestAnalyzeSignaturesAndLayout(t *testing.T) {
	bs := Analyze(mustLoad(t, invoice), Options{Features: []types.FeatureType{types.FeatureTypeSignatures, types.FeatureTypeLayout}})
	if n := countType(bs, types.BlockTypeSignature); n != 1 {
		t.Fatalf("expected 1 signature, got %d", n)
	}
	var kinds []types.BlockType
	for _, b := range bs {
		if strings.HasPrefix(string(b.BlockType), "LAYOUT_") {
			kinds = append(kinds, b.BlockType)
		}
	}
	want := []types.BlockType{
		types.BlockTypeLayoutTitle,
		types.BlockTypeLayoutKeyValue,
		types.BlockTypeLayoutTable,
		types.BlockTypeLayoutKeyValue,
		types.BlockTypeLayoutText,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("layout %v", kinds)
	}
	g := blocks.New(bs)
	title := g.ByType(types.BlockTypeLayoutTitle)[0]
	if g.Text(title) != "ACME Supplies Inc" {
		t.Fatalf("title text %q", g.Text(title))
	}
}

func TestPageSet(t *testing.T) {
	cases := []struct {
		pages []string
		want  []int32
	}{
		{nil, []int32{1}},
		{[]string{"*"}, []int32{1, 2, 3, 4}},
		{[]string{"2-*"}, []int32{2, 3, 4}},
		{[]string{"1", "3-4"}, []int32{1, 3, 4}},
		{[]string{"9"}, nil},
	}
	for _, tc := range cases {
		got := PageSet(tc.pages, 4)
		if len(got) != len(tc.want) {
			t.Fatalf("%v: got %v", tc.pages, got)
		}
		for _, p := range tc.want {
			if !got[p] {
				t.Fatalf("%v: missing page %d in %v", tc.pages, p, got)
			}
		}
	}
}

func TestExpense(t *testing.T) {
	docs := Expense(mustLoad(t, invoice))
	if len(docs) != 1 || docs[0].GetExpenseIndex() != 1 {
		t.Fatalf("unexpected expense documents %d", len(docs))
	}
	fields := map[string]*types.ExpenseField{}
	for i := range docs[0].SummaryFields {
		f := &docs[0].SummaryFields[i]
		fields[f.GetType().GetText()] = f
	}
	if got := fields["VENDOR_NAME"].GetValueDetection().GetText(); got != "ACME Supplies Inc" {
		t.Fatalf("vendor %q", got)
	}
	if got := fields["INVOICE_RECEIPT_ID"].GetValueDetection().GetText(); got != "INV-1001" {
		t.Fatalf("invoice id %q", got)
	}
	total := fields["TOTAL"]
	if total.GetValueDetection().GetText() != "$25.50" || total.GetCurrency().GetCode() != "USD" {
		t.Fatalf("total %v", total)
	}
	groups := docs[0].LineItemGroups
	if len(groups) != 1 || groups[0].GetLineItemGroupIndex() != 1 || len(groups[0].LineItems) != 2 {
		t.Fatalf("line item groups %v", groups)
	}
	item := map[string]string{}
	for _, f := range groups[0].LineItems[0].LineItemExpenseFields {
		item[f.GetType().GetText()] = f.GetValueDetection().GetText()
	}
	want := map[string]string{"ITEM": "Widget", "QUANTITY": "2", "UNIT_PRICE": "$10.00", "EXPENSE_ROW": "Widget 2 $10.00"}
	if !reflect.DeepEqual(item, want) {
		t.Fatalf("line item %v", item)
	}
	if countType(docs[0].Blocks, types.BlockTypePage) != 1 {
		t.Fatal("expected the page blocks in the expense document")
	}
}

func TestIdentity(t *testing.T) {
	doc := mustLoad(t, "DRIVER LICENSE\nFirst Name: JANE\nLast Name: ROE\nDOB: 01/31/1990\nDocument Number: D1234567\n")
	id := Identity(doc, 1)
	if id.GetDocumentIndex() != 1 || len(id.IdentityDocumentFields) != len(IdentityFields) {
		t.Fatalf("unexpected identity document with %d fields", len(id.IdentityDocumentFields))
	}
	got := map[string]*types.AnalyzeIDDetections{}
	for _, f := range id.IdentityDocumentFields {
		got[f.GetType().GetText()] = f.GetValueDetection()
	}
	if got["FIRST_NAME"].GetText() != "JANE" || got["LAST_NAME"].GetText() != "ROE" {
		t.Fatalf("names %q %q", got["FIRST_NAME"].GetText(), got["LAST_NAME"].GetText())
	}
	dob := got["DATE_OF_BIRTH"]
	if dob.GetNormalizedValue().GetValue() != "1990-01-31T00:00:00" || dob.GetNormalizedValue().ValueType != types.ValueTypeDate {
		t.Fatalf("dob %v", dob)
	}
	if got["ID_TYPE"].GetText() != "DRIVER LICENSE FRONT" {
		t.Fatalf("id type %q", got["ID_TYPE"].GetText())
	}
	if middle := got["MIDDLE_NAME"]; middle == nil || middle.Text == nil || *middle.Text != "" {
		t.Fatalf("absent fields must be present with empty text, got %v", middle)
	}
}

func TestNormalizeDate(t *testing.T) {
	for in, want := range map[string]string{
		"2024-03-15":     "2024-03-15T00:00:00",
		"15 Mar 2024":    "2024-03-15T00:00:00",
		"March 15, 2024": "2024-03-15T00:00:00",
	} {
		if got, ok := NormalizeDate(in); !ok || got != want {
			t.Fatalf("%s: got %q %v", in, got, ok)
		}
	}
	if _, ok := NormalizeDate("soon"); ok {
		t.Fatal("expected failure")
	}
}

func TestLending(t *testing.T) {
	doc := mustLoad(t, "Payslip\nNet Pay: $2,000\nEmployee Signature:\fPayslip continued\nGross Pay: $3,000\fBank Statement\nAccount Summary\nBalance: $100\n/s/ J Roe\fhello world")
	catalog := []PageType{
		{Type: "PAYSLIPS", Keywords: []string{"payslip"}},
		{Type: "BANK_STATEMENT", Keywords: []string{"bank statement", "account summary"}},
		{Type: "W2", Keywords: []string{"form w-2"}},
	}
	results, summary := Lending(doc, catalog)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	var classes []string
	for _, r := range results {
		classes = append(classes, r.GetPageClassification().PageType[0].GetValue())
	}
	if !reflect.DeepEqual(classes, []string{"PAYSLIPS", "PAYSLIPS", "BANK_STATEMENT", Unclassified}) {
		t.Fatalf("classes %v", classes)
	}
	if pos := results[1].GetPageClassification().PageNumber[0].GetValue(); pos != "2" {
		t.Fatalf("page position %q", pos)
	}
	fields := results[0].Extractions[0].GetLendingDocument().LendingFields
	if fields[0].GetType() != "PAYSLIPS_NET_PAY" || fields[0].ValueDetections[0].GetText() != "$2,000" {
		t.Fatalf("lending field %v", fields[0])
	}
	if len(results[3].Extractions) != 0 {
		t.Fatal("unclassified pages have no extraction")
	}

	if len(summary.DocumentGroups) != 3 {
		t.Fatalf("groups %v", summary.DocumentGroups)
	}
	pay := summary.DocumentGroups[0]
	if pay.GetType() != "PAYSLIPS" || len(pay.SplitDocuments) != 1 || !reflect.DeepEqual(pay.SplitDocuments[0].Pages, []int32{1, 2}) {
		t.Fatalf("payslip group %v", pay)
	}
	if len(pay.UndetectedSignatures) != 1 || pay.UndetectedSignatures[0].GetPage() != 1 {
		t.Fatalf("undetected signatures %v", pay.UndetectedSignatures)
	}
	bank := summary.DocumentGroups[1]
	if len(bank.DetectedSignatures) != 1 || bank.DetectedSignatures[0].GetPage() != 3 {
		t.Fatalf("detected signatures %v", bank.DetectedSignatures)
	}
	if !reflect.DeepEqual(summary.UndetectedDocumentTypes, []string{"W2"}) {
		t.Fatalf("undetected types %v", summary.UndetectedDocumentTypes)
	}
}
