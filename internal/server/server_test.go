package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"docanalysis/internal/config"
	"docanalysis/internal/db"
	"docanalysis/internal/domain"
	"docanalysis/internal/engine"
	"docanalysis/internal/migrate"
	"docanalysis/internal/objectstore"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

const testSecret = "test-secret"

type testServer struct {
	URL    string
	Engine engine.Engine
	client *http.Client
	close  func()
}

func (s *testServer) Client() *http.Client { return s.client }
func (s *testServer) Close()               { s.close() }

// sdk returns an SDK client for the server authenticated with token.
func (s *testServer) sdk(token string) *docanalysis.Client {
	return docanalysis.New(s.URL+"/v1", docanalysis.WithBearerToken(token))
}

func newTestServer(t *testing.T, authCfg AuthConfig, tune ...func(*config.Config)) *testServer {
	t.Helper()
	workspace := t.TempDir()
	if _, err := db.EnsureWorkspace(workspace); err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	cfg := config.Default()
	for _, f := range tune {
		f(cfg)
	}
	conn, err := db.Open(db.Config{Workspace: workspace})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := engine.New(conn, cfg, objectstore.NewFilesystem(db.ObjectRoot(workspace, "objects")))
	handler, err := New(Config{Engine: e, BasePath: "/v1", Auth: authCfg})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	testSrv := &testServer{
		URL:    "http://" + ln.Addr().String(),
		Engine: e,
		client: &http.Client{},
		close: func() {
			srv.Shutdown(context.Background())
			ln.Close()
			conn.Close()
		},
	}
	t.Cleanup(testSrv.Close)
	return testSrv
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader = bytes.NewReader(nil)
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, data
}

func decodeEnvelope(t *testing.T, data []byte) serviceError {
	t.Helper()
	var env serviceError
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode error envelope %s: %v", string(data), err)
	}
	return env
}

func ptr[T any](v T) *T { return &v }

func TestDetectTextThroughSDK(t *testing.T) {
	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"})
	ctx := context.Background()
	if _, err := srv.Engine.Store.Put(ctx, "docs", "letter.txt", []byte("Dear customer\nYour order has shipped\n"), "text/plain"); err != nil {
		t.Fatalf("put: %v", err)
	}
	client := srv.sdk("")
	out, err := client.DetectDocumentText(ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{S3Object: &types.S3Object{Bucket: ptr("docs"), Name: ptr("letter.txt")}},
	})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if out.DocumentMetadata.GetPages() != 1 {
		t.Fatalf("expected 1 page, got %d", out.DocumentMetadata.GetPages())
	}
	var lines []string
	for _, b := range out.Blocks {
		if b.BlockType == types.BlockTypeLine {
			lines = append(lines, b.GetText())
		}
	}
	if len(lines) != 2 || lines[1] != "Your order has shipped" {
		t.Fatalf("unexpected lines %q", lines)
	}

	// Inline bytes travel base64 encoded.
	out, err = client.DetectDocumentText(ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte("Hello")},
	})
	if err != nil {
		t.Fatalf("detect inline: %v", err)
	}
	if len(out.Blocks) == 0 {
		t.Fatal("expected blocks for inline document")
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"})
	client := srv.Client()

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/v1/GetAdapter", map[string]any{"AdapterId": "0123456789ab"}, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("get adapter status %d: %s", res.StatusCode, string(data))
	}
	if env := decodeEnvelope(t, data); env.Type != types.ErrCodeResourceNotFound || env.Message == "" {
		t.Fatalf("unexpected envelope %+v", env)
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v1/GetAdapter", "{not json", nil)
	if res.StatusCode != http.StatusBadRequest || decodeEnvelope(t, data).Type != types.ErrCodeValidation {
		t.Fatalf("malformed body status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v1/DescribeEverything", map[string]any{}, nil)
	if res.StatusCode != http.StatusNotFound || decodeEnvelope(t, data).Type != "UnknownOperationException" {
		t.Fatalf("unknown operation status %d: %s", res.StatusCode, string(data))
	}

	// The SDK turns the envelope back into the typed error.
	_, err := srv.sdk("").GetAdapter(context.Background(), &docanalysis.GetAdapterInput{AdapterId: ptr("0123456789ab")})
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ResourceNotFoundException, got %v", err)
	}

	// Client side validation never reaches the server.
	_, err = srv.sdk("").GetAdapter(context.Background(), &docanalysis.GetAdapterInput{})
	var invalid *types.InvalidParamsError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParamsError, got %v", err)
	}
}

func TestAuthentication(t *testing.T) {
	srv := newTestServer(t, AuthConfig{JWTSecret: testSecret})
	ctx := context.Background()
	client := srv.Client()

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/v1/health", nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v1/ListAdapters", map[string]any{}, nil)
	if res.StatusCode != http.StatusUnauthorized || decodeEnvelope(t, data).Type != "MissingAuthenticationTokenException" {
		t.Fatalf("anonymous status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v1/ListAdapters", map[string]any{}, map[string]string{"Authorization": "Bearer nope"})
	if res.StatusCode != http.StatusUnauthorized || decodeEnvelope(t, data).Type != "UnrecognizedClientException" {
		t.Fatalf("bad token status %d: %s", res.StatusCode, string(data))
	}

	reader, err := IssueToken(testSecret, "rita", []string{"reader"}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	_, err = srv.sdk(reader).DetectDocumentText(ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte("Hello")},
	})
	var denied *types.AccessDeniedException
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedException, got %v", err)
	}
	if _, err := srv.sdk(reader).ListAdapters(ctx, &docanalysis.ListAdaptersInput{}); err != nil {
		t.Fatalf("reader list adapters: %v", err)
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/v1/me", nil, map[string]string{"Authorization": "Bearer " + reader})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status %d: %s", res.StatusCode, string(data))
	}
	var who WhoAmIResponse
	if err := json.Unmarshal(data, &who); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if who.ActorID != "rita" || who.Source != "jwt" || len(who.Roles) != 1 || who.Roles[0] != "reader" {
		t.Fatalf("unexpected principal %+v", who)
	}

	// API keys carry the roles granted to their actor.
	_, secret, err := srv.Engine.CreateAPIKey(ctx, "ci-bot", "ci", []string{"analyst"})
	if err != nil {
		t.Fatalf("create api key: %v", err)
	}
	keyClient := docanalysis.New(srv.URL+"/v1", docanalysis.WithAPIKey(secret))
	if _, err := keyClient.DetectDocumentText(ctx, &docanalysis.DetectDocumentTextInput{
		Document: &types.Document{Bytes: []byte("Hello")},
	}); err != nil {
		t.Fatalf("analyst detect: %v", err)
	}
	_, err = keyClient.CreateAdapter(ctx, &docanalysis.CreateAdapterInput{
		AdapterName:  ptr("invoices"),
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
	})
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedException for analyst, got %v", err)
	}

	res, _ = doJSON(t, client, http.MethodPost, srv.URL+"/v1/ListAdapters", map[string]any{}, map[string]string{"X-Api-Key": "dak_unknown"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown key status %d", res.StatusCode)
	}
}

func TestJobNotification(t *testing.T) {
	const topicArn = "arn:aws:sns:local-1:000000000000:job-done"
	type delivery struct {
		header http.Header
		body   notification
	}
	received := make(chan delivery, 4)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n notification
		_ = json.NewDecoder(r.Body).Decode(&n)
		received <- delivery{header: r.Header.Clone(), body: n}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"}, func(c *config.Config) {
		c.Notification.Topics = map[string]config.Topic{
			topicArn: {URL: hook.URL, Secret: "s3cr3t", Events: []string{"job.completed"}},
		}
	})
	ctx := context.Background()
	n := newNotifier(srv.Engine)
	if n == nil {
		t.Fatal("expected a notifier")
	}
	n.dispatchAll(ctx)

	if _, err := srv.Engine.Store.Put(ctx, "docs", "memo.txt", []byte("Quarterly memo\nAll hands on Friday\n"), "text/plain"); err != nil {
		t.Fatalf("put: %v", err)
	}
	client := srv.sdk("")
	started, err := client.StartDocumentTextDetection(ctx, &docanalysis.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{S3Object: &types.S3Object{Bucket: ptr("docs"), Name: ptr("memo.txt")}},
		JobTag:           ptr("memo"),
		NotificationChannel: &types.NotificationChannel{
			SNSTopicArn: ptr(topicArn),
			RoleArn:     ptr("arn:aws:iam::000000000000:role/notify"),
		},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := srv.Engine.ProcessPending(ctx, 10); err != nil {
		t.Fatalf("process: %v", err)
	}
	got, err := client.GetDocumentTextDetection(ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: started.JobId})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.JobStatus != types.JobStatusSucceeded || len(got.Blocks) == 0 {
		t.Fatalf("unexpected job result status=%s blocks=%d", got.JobStatus, len(got.Blocks))
	}

	n.dispatchAll(ctx)
	select {
	case d := <-received:
		if d.header.Get("X-Docanalysis-Event") != "job.completed" || d.header.Get("X-Docanalysis-Secret") != "s3cr3t" {
			t.Fatalf("unexpected headers %v", d.header)
		}
		if d.body.TopicArn != topicArn {
			t.Fatalf("unexpected topic %s", d.body.TopicArn)
		}
		var msg struct {
			JobId  string
			Status string
			API    string
			JobTag string
		}
		if err := json.Unmarshal([]byte(d.body.Message), &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		if msg.JobId != *started.JobId || msg.Status != "SUCCEEDED" || msg.API != "StartDocumentTextDetection" || msg.JobTag != "memo" {
			t.Fatalf("unexpected message %+v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("notification not delivered")
	}

	// Delivered events are not sent twice.
	n.dispatchAll(ctx)
	select {
	case d := <-received:
		t.Fatalf("unexpected second delivery %+v", d.body)
	default:
	}
}

func TestEventsAndOpenAPI(t *testing.T) {
	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"})
	client := srv.Client()
	ctx := context.Background()
	for _, name := range []string{"invoices", "receipts"} {
		if _, err := srv.sdk("").CreateAdapter(ctx, &docanalysis.CreateAdapterInput{
			AdapterName:  ptr(name),
			FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
		}); err != nil {
			t.Fatalf("create adapter %s: %v", name, err)
		}
	}

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/v1/events?limit=1", nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("events status %d: %s", res.StatusCode, string(data))
	}
	var page paginatedEvents
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Type != "adapter.created" || page.NextCursor == "" {
		t.Fatalf("unexpected first page %+v", page)
	}
	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/v1/events?cursor="+page.NextCursor, nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("events status %d: %s", res.StatusCode, string(data))
	}
	page = paginatedEvents{}
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(page.Items) != 1 || page.NextCursor != "" {
		t.Fatalf("unexpected second page %+v", page)
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/v1/openapi.json", nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("openapi status %d", res.StatusCode)
	}
	var oas struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(data, &oas); err != nil {
		t.Fatalf("decode openapi: %v", err)
	}
	for _, op := range []string{"AnalyzeDocument", "StartLendingAnalysis", "CreateAdapterVersion", "UntagResource"} {
		if _, ok := oas.Paths["/v1/"+op]["post"]; !ok {
			t.Fatalf("openapi missing %s", op)
		}
	}
}

func TestTagAdapterThroughSDK(t *testing.T) {
	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"})
	client := srv.sdk("")
	ctx := context.Background()
	created, err := client.CreateAdapter(ctx, &docanalysis.CreateAdapterInput{
		AdapterName:  ptr("invoices"),
		FeatureTypes: []types.FeatureType{types.FeatureTypeQueries},
		Tags:         map[string]string{"team": "ops"},
	})
	if err != nil {
		t.Fatalf("create adapter: %v", err)
	}
	arn := "arn:aws:docanalysis:local-1:000000000000:adapter/invoices/" + created.GetAdapterId()
	if arn != srv.Engine.AdapterARN(domain.Adapter{ID: created.GetAdapterId(), Name: "invoices"}) {
		t.Fatalf("unexpected adapter arn layout")
	}

	if _, err := client.TagResource(ctx, &docanalysis.TagResourceInput{
		ResourceARN: ptr(arn), Tags: map[string]string{"env": "test"},
	}); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if _, err := client.UntagResource(ctx, &docanalysis.UntagResourceInput{
		ResourceARN: ptr(arn), TagKeys: []string{"team"},
	}); err != nil {
		t.Fatalf("untag: %v", err)
	}
	out, err := client.ListTagsForResource(ctx, &docanalysis.ListTagsForResourceInput{ResourceARN: ptr(arn)})
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(out.Tags) != 1 || out.Tags["env"] != "test" {
		t.Fatalf("unexpected tags %v", out.Tags)
	}

	_, err = client.ListTagsForResource(ctx, &docanalysis.ListTagsForResourceInput{
		ResourceARN: ptr("arn:aws:docanalysis:local-1:000000000000:adapter/invoices/ffffffffffff"),
	})
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ResourceNotFoundException, got %v", err)
	}
}

func TestOpenAPIServedConcurrently(t *testing.T) {
	srv := newTestServer(t, AuthConfig{AnonymousRole: "admin"})
	client := srv.Client()
	bodies := make([][]byte, 8)
	errs := make(chan error, len(bodies))
	var wg sync.WaitGroup
	for i := range bodies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := client.Get(srv.URL + "/v1/openapi.json")
			if err != nil {
				errs <- err
				return
			}
			defer res.Body.Close()
			if res.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("status %d", res.StatusCode)
				return
			}
			bodies[i], err = io.ReadAll(res.Body)
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("get openapi: %v", err)
	}
	for i := 1; i < len(bodies); i++ {
		if !bytes.Equal(bodies[0], bodies[i]) {
			t.Fatalf("openapi documents differ between requests")
		}
	}
	if !bytes.Contains(bodies[0], []byte(`"bearerAuth"`)) {
		t.Fatalf("openapi document lacks security schemes")
	}
}
