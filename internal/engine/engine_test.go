package engine_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"docanalysis/internal/config"
	"docanalysis/internal/db"
	"docanalysis/internal/domain"
	"docanalysis/internal/engine"
	"docanalysis/internal/migrate"
	"docanalysis/internal/objectstore"
	"docanalysis/internal/repo"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/blocks"
	"docanalysis/sdk/go/types"
)

const invoice = `ACME Supplies Inc
Invoice Number: INV-1001
Date: 03/15/2024
Paid: [x]

| Item | Qty | Price |
|------|-----|-------|
| Widget | 2 | $10.00 |
| Gadget | 1 | $5.50 |

Total: $25.50
`

type testEnv struct {
	Engine engine.Engine
	Ctx    context.Context
}

func newTestEnv(t *testing.T, tune ...func(*config.Config)) testEnv {
	t.Helper()
	dir := t.TempDir()
	conn, err := db.Open(db.Config{Workspace: dir})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Default()
	for _, f := range tune {
		f(cfg)
	}
	eng := engine.New(conn, cfg, objectstore.NewFilesystem(db.ObjectRoot(dir, "objects")))
	eng.Now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return testEnv{Engine: eng, Ctx: context.Background()}
}

func (env testEnv) put(t *testing.T, bucket, name, body string) *types.S3Object {
	t.Helper()
	if _, err := env.Engine.Store.Put(env.Ctx, bucket, name, []byte(body), "text/plain"); err != nil {
		t.Fatalf("put %s/%s: %v", bucket, name, err)
	}
	return &types.S3Object{Bucket: ptr(bucket), Name: ptr(name)}
}

func ptr[T any](v T) *T { return &v }

func errCode(err error) string {
	var apiErr types.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if got := errCode(err); got != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestAnalyzeDocumentQueries(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.Engine.AnalyzeDocument(env.Ctx, "tester", &docanalysis.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: []byte(invoice)},
		FeatureTypes: []types.FeatureType{types.FeatureTypeForms, types.FeatureTypeQueries},
		QueriesConfig: &types.QueriesConfig{Queries: []types.Query{
			{Text: ptr("What is the invoice number?"), Alias: ptr("INVOICE_ID")},
		}},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if out.DocumentMetadata.GetPages() != 1 {
		t.Fatalf("expected 1 page, got %d", out.DocumentMetadata.GetPages())
	}
	if out.AnalyzeDocumentModelVersion == nil {
		t.Fatal("expected a model version")
	}
	g := blocks.New(out.Blocks)
	if got, ok := g.Answer("INVOICE_ID"); !ok || got != "INV-1001" {
		t.Fatalf("answer %q %v", got, ok)
	}
	if len(g.KeyValues()) == 0 {
		t.Fatal("expected key values")
	}
}

func TestSyncDocumentChecks(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Limits.SyncMaxBytes = 64 })
	_, err := env.Engine.DetectDocumentText(env.Ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte(strings.Repeat("x", 65))},
	})
	wantCode(t, err, types.ErrCodeDocumentTooLarge)

	_, err = env.Engine.DetectDocumentText(env.Ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte("one\ftwo")},
	})
	wantCode(t, err, types.ErrCodeUnsupportedDocument)

	_, err = env.Engine.DetectDocumentText(env.Ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{S3Object: &types.S3Object{Bucket: ptr("docs"), Name: ptr("missing.txt")}},
	})
	wantCode(t, err, types.ErrCodeInvalidS3Object)

	_, err = env.Engine.AnalyzeDocument(env.Ctx, "tester", &docanalysis.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: []byte("Name: Jane")},
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
	})
	wantCode(t, err, types.ErrCodeInvalidParameter)

	_, err = env.Engine.DetectDocumentText(env.Ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte{0x00, 0x01, 0x02, 0xff}},
	})
	if code := errCode(err); code != types.ErrCodeUnsupportedDocument && code != types.ErrCodeBadDocument {
		t.Fatalf("expected a document error, got %v", err)
	}
}

func TestAnalyzeIDPages(t *testing.T) {
	env := newTestEnv(t)
	front := "DRIVER LICENSE\nFirst Name: JANE\nLast Name: ROE\nDate of Birth: 01/02/1990\n"
	out, err := env.Engine.AnalyzeID(env.Ctx, &docanalysis.AnalyzeIDInput{
		DocumentPages: []types.Document{{Bytes: []byte(front)}, {Bytes: []byte("Class: C\n")}},
	})
	if err != nil {
		t.Fatalf("analyze id: %v", err)
	}
	if len(out.IdentityDocuments) != 2 {
		t.Fatalf("expected 2 identity documents, got %d", len(out.IdentityDocuments))
	}
	if out.IdentityDocuments[1].GetDocumentIndex() != 2 {
		t.Fatalf("expected index 2, got %d", out.IdentityDocuments[1].GetDocumentIndex())
	}
}

func TestSyncRateLimit(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) {
		c.Limits.SyncRate = 0.001
		c.Limits.SyncBurst = 1
	})
	in := &docanalysis.DetectDocumentTextInput{Document: &types.Document{Bytes: []byte("hello")}}
	if _, err := env.Engine.DetectDocumentText(env.Ctx, in); err != nil {
		t.Fatalf("first call: %v", err)
	}
	_, err := env.Engine.DetectDocumentText(env.Ctx, in)
	wantCode(t, err, types.ErrCodeProvisionedThroughputExceeded)
}

func TestTextDetectionJob(t *testing.T) {
	env := newTestEnv(t)
	obj := env.put(t, "docs", "letters.txt", "Hello there\nSecond line\f\fGoodbye\n")
	start, err := env.Engine.StartDocumentTextDetection(env.Ctx, "tester", &docanalysis.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
		JobTag:           ptr("letters"),
		OutputConfig:     &types.OutputConfig{S3Bucket: ptr("out"), S3Prefix: ptr("runs")},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	jobID := start.GetJobId()

	pending, err := env.Engine.GetDocumentTextDetection(env.Ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: ptr(jobID)})
	if err != nil {
		t.Fatalf("get pending: %v", err)
	}
	if pending.JobStatus != types.JobStatusInProgress || len(pending.Blocks) != 0 {
		t.Fatalf("expected IN_PROGRESS without blocks, got %s with %d", pending.JobStatus, len(pending.Blocks))
	}

	if n, err := env.Engine.ProcessPending(env.Ctx, 10); err != nil || n != 1 {
		t.Fatalf("process: %d %v", n, err)
	}

	var all []types.Block
	var token *string
	for pages := 0; ; pages++ {
		out, err := env.Engine.GetDocumentTextDetection(env.Ctx, &docanalysis.GetDocumentTextDetectionInput{
			JobId: ptr(jobID), MaxResults: ptr(int32(2)), NextToken: token,
		})
		if err != nil {
			t.Fatalf("get page %d: %v", pages, err)
		}
		if out.JobStatus != types.JobStatusPartialSuccess {
			t.Fatalf("expected PARTIAL_SUCCESS, got %s", out.JobStatus)
		}
		if len(out.Warnings) != 1 || out.Warnings[0].GetErrorCode() != engine.WarningNoText {
			t.Fatalf("expected a no-text warning, got %+v", out.Warnings)
		}
		if out.DocumentMetadata.GetPages() != 3 {
			t.Fatalf("expected 3 pages, got %d", out.DocumentMetadata.GetPages())
		}
		all = append(all, out.Blocks...)
		if out.NextToken == nil {
			break
		}
		token = out.NextToken
	}
	if got := len(blocks.New(all).Pages()); got != 3 {
		t.Fatalf("expected 3 PAGE blocks across pages, got %d", got)
	}

	data, _, err := env.Engine.Store.Get(env.Ctx, "out", "runs/"+jobID+"/1", "")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var file struct {
		JobStatus string
		Blocks    []types.Block
	}
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if file.JobStatus != string(types.JobStatusPartialSuccess) || len(file.Blocks) != len(all) {
		t.Fatalf("unexpected output file %s with %d blocks", file.JobStatus, len(file.Blocks))
	}

	var count int
	if err := env.Engine.DB.QueryRowContext(env.Ctx, `SELECT count(*) FROM events WHERE type='job.completed' AND entity_id=?`, jobID).Scan(&count); err != nil {
		t.Fatalf("query events: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one completion event, got %d", count)
	}
}

func TestJobFailsOnUnreadableDocument(t *testing.T) {
	env := newTestEnv(t)
	obj := env.put(t, "docs", "blob.bin", string([]byte{0x00, 0x01, 0x02, 0xff}))
	start, err := env.Engine.StartExpenseAnalysis(env.Ctx, "tester", &docanalysis.StartExpenseAnalysisInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := env.Engine.ProcessPending(env.Ctx, 10); err != nil {
		t.Fatalf("process: %v", err)
	}
	out, err := env.Engine.GetExpenseAnalysis(env.Ctx, &docanalysis.GetExpenseAnalysisInput{JobId: start.JobId})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.JobStatus != types.JobStatusFailed || out.StatusMessage == nil {
		t.Fatalf("expected FAILED with a message, got %s", out.JobStatus)
	}
}

func TestStuckJobDoesNotBlockQueue(t *testing.T) {
	env := newTestEnv(t)
	var ids []string
	for _, name := range []string{"a.txt", "b.txt"} {
		obj := env.put(t, "docs", name, "Hello "+name+"\n")
		start, err := env.Engine.StartDocumentTextDetection(env.Ctx, "tester", &docanalysis.StartDocumentTextDetectionInput{
			DocumentLocation: &types.DocumentLocation{S3Object: obj},
		})
		if err != nil {
			t.Fatalf("start %s: %v", name, err)
		}
		ids = append(ids, start.GetJobId())
	}
	stuck, healthy := ids[0], ids[1]
	if healthy < stuck {
		stuck, healthy = healthy, stuck
	}
	if _, err := env.Engine.DB.ExecContext(env.Ctx, `UPDATE jobs SET kind='retired' WHERE id=?`, stuck); err != nil {
		t.Fatalf("corrupt job: %v", err)
	}

	n, err := env.Engine.ProcessPending(env.Ctx, 10)
	if n != 1 {
		t.Fatalf("expected one completed job, got %d", n)
	}
	if err == nil || !strings.Contains(err.Error(), stuck) {
		t.Fatalf("expected an error naming %s, got %v", stuck, err)
	}
	out, err := env.Engine.GetDocumentTextDetection(env.Ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: ptr(healthy)})
	if err != nil {
		t.Fatalf("get healthy: %v", err)
	}
	if out.JobStatus != types.JobStatusSucceeded {
		t.Fatalf("expected SUCCEEDED, got %s", out.JobStatus)
	}
	j, err := env.Engine.Repo.GetJob(env.Ctx, stuck)
	if err != nil {
		t.Fatalf("get stuck: %v", err)
	}
	if j.Status != string(types.JobStatusInProgress) {
		t.Fatalf("expected stuck job to stay queued, got %s", j.Status)
	}
}

func TestStartJobIdempotency(t *testing.T) {
	env := newTestEnv(t)
	obj := env.put(t, "docs", "invoice.txt", invoice)
	in := &docanalysis.StartDocumentAnalysisInput{
		DocumentLocation:   &types.DocumentLocation{S3Object: obj},
		FeatureTypes:       []types.FeatureType{types.FeatureTypeTables},
		ClientRequestToken: ptr("token-1"),
	}
	first, err := env.Engine.StartDocumentAnalysis(env.Ctx, "tester", in)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	again, err := env.Engine.StartDocumentAnalysis(env.Ctx, "tester", in)
	if err != nil {
		t.Fatalf("repeat: %v", err)
	}
	if first.GetJobId() != again.GetJobId() {
		t.Fatalf("expected the same job, got %s and %s", first.GetJobId(), again.GetJobId())
	}
	in.JobTag = ptr("changed")
	_, err = env.Engine.StartDocumentAnalysis(env.Ctx, "tester", in)
	wantCode(t, err, types.ErrCodeIdempotentParameterMismatch)
}

func TestJobLookupErrors(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Limits.MaxConcurrentJobs = 1 })
	obj := env.put(t, "docs", "invoice.txt", invoice)
	start, err := env.Engine.StartDocumentTextDetection(env.Ctx, "tester", &docanalysis.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = env.Engine.StartDocumentTextDetection(env.Ctx, "tester", &docanalysis.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
	})
	wantCode(t, err, types.ErrCodeLimitExceeded)

	_, err = env.Engine.GetDocumentAnalysis(env.Ctx, &docanalysis.GetDocumentAnalysisInput{JobId: start.JobId})
	wantCode(t, err, types.ErrCodeInvalidJobId)

	_, err = env.Engine.GetDocumentTextDetection(env.Ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: ptr("nope")})
	wantCode(t, err, types.ErrCodeInvalidJobId)

	_, err = env.Engine.GetDocumentTextDetection(env.Ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: start.JobId, NextToken: ptr("garbage")})
	wantCode(t, err, types.ErrCodeInvalidParameter)

	_, err = env.Engine.StartDocumentTextDetection(env.Ctx, "tester", &docanalysis.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
		KMSKeyId:         ptr("not a key"),
	})
	wantCode(t, err, types.ErrCodeInvalidKMSKey)
}

func TestLendingJob(t *testing.T) {
	env := newTestEnv(t)
	body := "Payslip\nEmployee: Jane Roe\nNet Pay: $1,000.00\n\fBank Statement\nAccount Summary\nStatement Period: 01/2024\n"
	obj := env.put(t, "docs", "loan.txt", body)
	start, err := env.Engine.StartLendingAnalysis(env.Ctx, "tester", &docanalysis.StartLendingAnalysisInput{
		DocumentLocation: &types.DocumentLocation{S3Object: obj},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := env.Engine.ProcessPending(env.Ctx, 10); err != nil {
		t.Fatalf("process: %v", err)
	}
	results, err := env.Engine.GetLendingAnalysis(env.Ctx, &docanalysis.GetLendingAnalysisInput{JobId: start.JobId})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if results.JobStatus != types.JobStatusSucceeded || len(results.Results) != 2 {
		t.Fatalf("expected 2 results, got %s with %d", results.JobStatus, len(results.Results))
	}
	summary, err := env.Engine.GetLendingAnalysisSummary(env.Ctx, &docanalysis.GetLendingAnalysisSummaryInput{JobId: start.JobId})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Summary == nil || len(summary.Summary.DocumentGroups) == 0 {
		t.Fatalf("expected document groups, got %+v", summary.Summary)
	}
	found := false
	for _, g := range summary.Summary.DocumentGroups {
		found = found || g.GetType() == "PAYSLIPS"
	}
	if !found {
		t.Fatal("expected a PAYSLIPS group")
	}
}

func createAdapter(t *testing.T, env testEnv, name string) string {
	t.Helper()
	out, err := env.Engine.CreateAdapter(env.Ctx, "tester", &docanalysis.CreateAdapterInput{
		AdapterName:  ptr(name),
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
		Tags:         map[string]string{"team": "loans"},
	})
	if err != nil {
		t.Fatalf("create adapter: %v", err)
	}
	return out.GetAdapterId()
}

func createVersion(t *testing.T, env testEnv, adapterID string) string {
	t.Helper()
	manifest := env.put(t, "train", "manifest.jsonl", `{"source-ref":"s3://docs/invoice.txt"}`)
	out, err := env.Engine.CreateAdapterVersion(env.Ctx, "tester", &docanalysis.CreateAdapterVersionInput{
		AdapterId:     ptr(adapterID),
		DatasetConfig: &types.AdapterVersionDatasetConfig{ManifestS3Object: manifest},
		OutputConfig:  &types.OutputConfig{S3Bucket: ptr("train"), S3Prefix: ptr("eval")},
	})
	if err != nil {
		t.Fatalf("create version: %v", err)
	}
	return out.GetAdapterVersion()
}

func TestAdapterLifecycle(t *testing.T) {
	env := newTestEnv(t)
	id := createAdapter(t, env, "invoices")
	got, err := env.Engine.GetAdapter(env.Ctx, &docanalysis.GetAdapterInput{AdapterId: ptr(id)})
	if err != nil {
		t.Fatalf("get adapter: %v", err)
	}
	if got.AutoUpdate != types.AutoUpdateDisabled || got.Tags["team"] != "loans" {
		t.Fatalf("unexpected adapter %+v", got)
	}

	version := createVersion(t, env, id)
	if version != "1" {
		t.Fatalf("expected version 1, got %s", version)
	}
	v, err := env.Engine.GetAdapterVersion(env.Ctx, &docanalysis.GetAdapterVersionInput{AdapterId: ptr(id), AdapterVersion: ptr(version)})
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if v.Status != types.AdapterVersionStatusActive || len(v.EvaluationMetrics) != 1 {
		t.Fatalf("unexpected version %s with %d metrics", v.Status, len(v.EvaluationMetrics))
	}
	m := v.EvaluationMetrics[0]
	if m.AdapterVersion.GetF1Score() <= m.Baseline.GetF1Score() {
		t.Fatalf("expected adapter F1 above baseline: %+v", m)
	}
	if _, _, err := env.Engine.Store.Get(env.Ctx, "train", "eval/"+id+"/1/evaluation.json", ""); err != nil {
		t.Fatalf("evaluation output: %v", err)
	}

	out, err := env.Engine.AnalyzeDocument(env.Ctx, "tester", &docanalysis.AnalyzeDocumentInput{
		Document:       &types.Document{Bytes: []byte(invoice)},
		FeatureTypes:   []types.FeatureType{types.FeatureTypeQueries},
		QueriesConfig:  &types.QueriesConfig{Queries: []types.Query{{Text: ptr("What is the total?")}}},
		AdaptersConfig: &types.AdaptersConfig{Adapters: []types.Adapter{{AdapterId: ptr(id), Version: ptr(version)}}},
	})
	if err != nil {
		t.Fatalf("analyze with adapter: %v", err)
	}
	if answer, ok := blocks.New(out.Blocks).Answer("What is the total?"); !ok || answer != "$25.50" {
		t.Fatalf("answer %q %v", answer, ok)
	}
	_, err = env.Engine.AnalyzeDocument(env.Ctx, "tester", &docanalysis.AnalyzeDocumentInput{
		Document:       &types.Document{Bytes: []byte(invoice)},
		FeatureTypes:   []types.FeatureType{types.FeatureTypeQueries},
		QueriesConfig:  &types.QueriesConfig{Queries: []types.Query{{Text: ptr("What is the total?")}}},
		AdaptersConfig: &types.AdaptersConfig{Adapters: []types.Adapter{{AdapterId: ptr(id), Version: ptr("9")}}},
	})
	wantCode(t, err, types.ErrCodeResourceNotFound)

	if _, err := env.Engine.DeleteAdapter(env.Ctx, "tester", &docanalysis.DeleteAdapterInput{AdapterId: ptr(id)}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = env.Engine.GetAdapterVersion(env.Ctx, &docanalysis.GetAdapterVersionInput{AdapterId: ptr(id), AdapterVersion: ptr(version)})
	wantCode(t, err, types.ErrCodeResourceNotFound)
	_, err = env.Engine.DeleteAdapter(env.Ctx, "tester", &docanalysis.DeleteAdapterInput{AdapterId: ptr(id)})
	wantCode(t, err, types.ErrCodeResourceNotFound)
}

func TestCreateAdapterChecks(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Adapters.MaxAdapters = 2 })
	in := &docanalysis.CreateAdapterInput{
		AdapterName:        ptr("first"),
		FeatureTypes:       []types.FeatureType{types.FeatureTypeQueries},
		ClientRequestToken: ptr("adapter-token"),
	}
	a, err := env.Engine.CreateAdapter(env.Ctx, "tester", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := env.Engine.CreateAdapter(env.Ctx, "tester", in)
	if err != nil || a.GetAdapterId() != b.GetAdapterId() {
		t.Fatalf("expected idempotent create, got %v", err)
	}

	_, err = env.Engine.CreateAdapter(env.Ctx, "tester", &docanalysis.CreateAdapterInput{
		AdapterName:  ptr("tables-only"),
		FeatureTypes: []types.FeatureType{types.FeatureTypeTables},
	})
	wantCode(t, err, types.ErrCodeInvalidParameter)

	_, err = env.Engine.CreateAdapter(env.Ctx, "tester", &docanalysis.CreateAdapterInput{
		AdapterName:  ptr("first"),
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
	})
	wantCode(t, err, types.ErrCodeConflict)

	createAdapter(t, env, "second")
	_, err = env.Engine.CreateAdapter(env.Ctx, "tester", &docanalysis.CreateAdapterInput{
		AdapterName:  ptr("third"),
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
	})
	wantCode(t, err, types.ErrCodeServiceQuotaExceeded)
}

func TestListAdaptersPaging(t *testing.T) {
	env := newTestEnv(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env.Engine.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	for _, name := range []string{"alpha", "beta", "gamma"} {
		createAdapter(t, env, name)
	}
	var names []string
	var token *string
	for {
		out, err := env.Engine.ListAdapters(env.Ctx, &docanalysis.ListAdaptersInput{MaxResults: ptr(int32(2)), NextToken: token})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, a := range out.Adapters {
			names = append(names, a.GetAdapterName())
		}
		if out.NextToken == nil {
			break
		}
		token = out.NextToken
	}
	if strings.Join(names, ",") != "alpha,beta,gamma" {
		t.Fatalf("unexpected adapters %v", names)
	}
	_, err := env.Engine.ListAdapters(env.Ctx, &docanalysis.ListAdaptersInput{NextToken: ptr("!!")})
	wantCode(t, err, types.ErrCodeValidation)
}

func TestTagsFollowRenames(t *testing.T) {
	env := newTestEnv(t)
	id := createAdapter(t, env, "invoices")
	arn := env.Engine.AdapterARN(domain.Adapter{ID: id, Name: "invoices"})
	if _, err := env.Engine.TagResource(env.Ctx, &docanalysis.TagResourceInput{
		ResourceARN: ptr(arn), Tags: map[string]string{"env": "test"},
	}); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if _, err := env.Engine.UntagResource(env.Ctx, &docanalysis.UntagResourceInput{
		ResourceARN: ptr(arn), TagKeys: []string{"team"},
	}); err != nil {
		t.Fatalf("untag: %v", err)
	}

	updated, err := env.Engine.UpdateAdapter(env.Ctx, &docanalysis.UpdateAdapterInput{AdapterId: ptr(id), AdapterName: ptr("bills")})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	_, err = env.Engine.ListTagsForResource(env.Ctx, &docanalysis.ListTagsForResourceInput{ResourceARN: ptr(arn)})
	wantCode(t, err, types.ErrCodeResourceNotFound)

	renamed := env.Engine.AdapterARN(domain.Adapter{ID: id, Name: updated.GetAdapterName()})
	tags, err := env.Engine.ListTagsForResource(env.Ctx, &docanalysis.ListTagsForResourceInput{ResourceARN: ptr(renamed)})
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(tags.Tags) != 1 || tags.Tags["env"] != "test" {
		t.Fatalf("unexpected tags %v", tags.Tags)
	}

	_, err = env.Engine.ListTagsForResource(env.Ctx, &docanalysis.ListTagsForResourceInput{ResourceARN: ptr("arn:other:local-1:000000000000:adapter/x/y")})
	wantCode(t, err, types.ErrCodeValidation)
}

func TestHumanLoopActivation(t *testing.T) {
	env := newTestEnv(t)
	analyze := func(name string) (*docanalysis.AnalyzeDocumentOutput, error) {
		return env.Engine.AnalyzeDocument(env.Ctx, "tester", &docanalysis.AnalyzeDocumentInput{
			Document:     &types.Document{Bytes: []byte(invoice)},
			FeatureTypes: []types.FeatureType{types.FeatureTypeForms},
			HumanLoopConfig: &types.HumanLoopConfig{
				HumanLoopName:     ptr(name),
				FlowDefinitionArn: ptr("arn:aws:sagemaker:local-1:000000000000:flow-definition/review"),
				DataAttributes: &types.HumanLoopDataAttributes{
					ContentClassifiers: []types.ContentClassifier{types.ContentClassifierFreeOfAdultContent},
				},
			},
		})
	}
	out, err := analyze("review-1")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	hl := out.HumanLoopActivationOutput
	if hl == nil || hl.HumanLoopArn == nil || hl.HumanLoopActivationConditionsEvaluationResults == nil {
		t.Fatalf("expected an activated loop, got %+v", hl)
	}
	_, err = analyze("review-1")
	wantCode(t, err, types.ErrCodeConflict)

	env.Engine.Config.HumanLoop.MaxActiveLoops = 1
	_, err = analyze("review-2")
	wantCode(t, err, types.ErrCodeHumanLoopQuotaExceeded)
}

func TestAPIKeys(t *testing.T) {
	env := newTestEnv(t)
	key, secret, err := env.Engine.CreateAPIKey(env.Ctx, "ci-bot", "ci", []string{"analyst"})
	if err != nil {
		t.Fatalf("create key: %v", err)
	}
	if !strings.HasPrefix(secret, "dak_") || key.KeyHash == secret {
		t.Fatalf("unexpected secret handling")
	}
	stored, err := env.Engine.Repo.GetAPIKeyByHash(env.Ctx, repo.HashAPIKey(" "+secret+"\n"))
	if err != nil {
		t.Fatalf("lookup by hash: %v", err)
	}
	if stored.ID != key.ID || stored.Name != "ci" || stored.ActorID != "ci-bot" || stored.CreatedAt == "" {
		t.Fatalf("unexpected stored key %+v", stored)
	}
	if _, err := env.Engine.Repo.GetAPIKeyByHash(env.Ctx, repo.HashAPIKey("dak_unknown")); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := env.Engine.CreateAPIKey(env.Ctx, "viewer", "", []string{"reader"}); err != nil {
		t.Fatalf("create second key: %v", err)
	}
	all, err := env.Engine.ListAPIKeys(env.Ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("list all keys: %d %v", len(all), err)
	}
	keys, err := env.Engine.ListAPIKeys(env.Ctx, "ci-bot")
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if len(keys) != 1 || len(keys[0].Roles) != 1 || keys[0].Roles[0] != "analyst" {
		t.Fatalf("unexpected keys %+v", keys)
	}
	if _, _, err := env.Engine.CreateAPIKey(env.Ctx, "ci-bot", "bad", []string{"superuser"}); err == nil {
		t.Fatal("expected unknown role error")
	}
	if err := env.Engine.DeleteAPIKey(env.Ctx, key.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	wantCode(t, env.Engine.DeleteAPIKey(env.Ctx, key.ID), types.ErrCodeResourceNotFound)
}
