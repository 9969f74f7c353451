package docanalysis_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

func TestClientPostsOperationAndDecodesOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/DetectDocumentText", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		body, _ := io.ReadAll(r.Body)
		var in map[string]any
		require.NoError(t, json.Unmarshal(body, &in))
		assert.Contains(t, in, "Document")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"DocumentMetadata":{"Pages":1},"Blocks":[{"BlockType":"PAGE","Id":"p1"}]}`))
	}))
	defer srv.Close()

	c := docanalysis.New(srv.URL, docanalysis.WithAPIKey("secret"))
	out, err := c.DetectDocumentText(context.Background(), (&docanalysis.DetectDocumentTextInput{}).
		SetDocument((&types.Document{}).SetBytes([]byte("hello"))))
	require.NoError(t, err)
	assert.Equal(t, int32(1), out.GetDocumentMetadata().GetPages())
	require.Len(t, out.Blocks, 1)
	assert.Equal(t, types.BlockTypePage, out.Blocks[0].BlockType)
}

func TestClientValidatesBeforeSending(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := docanalysis.New(srv.URL)
	_, err := c.GetDocumentAnalysis(context.Background(), (&docanalysis.GetDocumentAnalysisInput{}).
		SetJobId("bad id!").SetMaxResults(0))
	require.Error(t, err)

	var opErr *docanalysis.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "GetDocumentAnalysis", opErr.Operation)

	var inv *types.InvalidParamsError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, types.ErrCodeInvalidParameter, types.ErrorCodeOf(err))
	assert.Equal(t, int32(0), hits.Load())
}

func TestClientDecodesServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/GetAdapter":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"__type":"docanalysis#ResourceNotFoundException","message":"adapter not found"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	defer srv.Close()
	c := docanalysis.New(srv.URL)

	_, err := c.GetAdapter(context.Background(), (&docanalysis.GetAdapterInput{}).SetAdapterId("0123456789ab"))
	var notFound *types.ResourceNotFoundException
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "adapter not found", notFound.ErrorMessage())

	_, err = c.ListAdapters(context.Background(), nil)
	var generic *types.GenericAPIError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, types.FaultServer, generic.ErrorFault())
	assert.Equal(t, "upstream down", generic.ErrorMessage())
}

func TestClientAcceptsEmptyOutputs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := docanalysis.New(srv.URL)
	c.BearerToken = "tok"
	out, err := c.DeleteAdapter(context.Background(), (&docanalysis.DeleteAdapterInput{}).SetAdapterId("0123456789ab"))
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestClientOptions(t *testing.T) {
	var auth, key, ua atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		key.Store(r.Header.Get("X-Api-Key"))
		ua.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	hc := &http.Client{}
	c := docanalysis.New(srv.URL+"/",
		docanalysis.WithAPIKey("k"),
		docanalysis.WithBearerToken("t"),
		docanalysis.WithHTTPClient(hc),
		docanalysis.WithUserAgent("cli/1"),
	)
	assert.Same(t, hc, c.HTTPClient)
	_, err := c.ListAdapters(context.Background(), &docanalysis.ListAdaptersInput{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer t", auth.Load())
	assert.Equal(t, "", key.Load())
	assert.Equal(t, "cli/1", ua.Load())

	d := docanalysis.New(srv.URL, docanalysis.WithTimeout(2*time.Second))
	require.NotNil(t, d.HTTPClient)
	assert.Equal(t, 2*time.Second, d.HTTPClient.Timeout)
}
