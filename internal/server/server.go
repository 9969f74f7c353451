package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"docanalysis/internal/domain"
	"docanalysis/internal/engine"
	"docanalysis/internal/engine/auth"
	"docanalysis/internal/logger"
	"docanalysis/sdk/go/types"
)

// APIVersion is reported in the OpenAPI document.
const APIVersion = "2018-06-27"

// Config for the HTTP API handler.
type Config struct {
	Engine   engine.Engine
	BasePath string
	Auth     AuthConfig
}

type bodyBytesKey struct{}

// serviceError is the JSON error envelope understood by the SDK.
type serviceError struct {
	status  int
	Type    string `json:"__type" example:"ResourceNotFoundException"`
	Message string `json:"message" example:"adapter 3f1c9a2b7d4e not found"`
}

func (e *serviceError) GetStatus() int { return e.status }
func (e *serviceError) Error() string  { return e.Message }

var log = logger.For("server")

// New returns an HTTP handler exposing the document analysis API.
func New(cfg Config) (http.Handler, error) {
	basePath := strings.TrimRight(cfg.BasePath, "/")
	if basePath != "" && !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	huma.DefaultArrayNullable = false
	// Huma errors use the same envelope as service errors.
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return newServiceError(status, "", msg)
	}
	huma.NewErrorWithContext = func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newServiceError(status, "", msg)
	}

	// Inline documents travel base64 encoded inside the JSON body.
	maxBody := cfg.Engine.Config.Limits.SyncMaxBytes/3*4 + 1<<20

	router := chi.NewRouter()
	router.Use(middleware.RequestID, requestLogger, middleware.Recoverer)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					respondStatusError(w, newServiceError(http.StatusRequestEntityTooLarge, types.ErrCodeDocumentTooLarge,
						fmt.Sprintf("request body exceeds %d bytes", maxBody)))
					return
				}
				respondStatusError(w, newServiceError(http.StatusBadRequest, types.ErrCodeValidation, "unable to read request body"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyBytesKey{}, body)))
		})
	})
	router.Use(newAuthMiddleware(basePath, cfg.Auth, cfg.Engine))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		op := path.Base(r.URL.Path)
		respondStatusError(w, newServiceError(http.StatusNotFound, "UnknownOperationException", fmt.Sprintf("unknown operation %s", op)))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondStatusError(w, newServiceError(http.StatusMethodNotAllowed, "UnknownOperationException", "operations are invoked with POST"))
	})

	hcfg := huma.DefaultConfig("Document Analysis API", APIVersion)
	hcfg.OpenAPIPath = "" // served below with security schemes applied
	hcfg.DocsPath = ""
	hcfg.SchemasPath = ""
	hcfg.CreateHooks = nil
	api := humachi.New(router, hcfg)
	var group huma.API = api
	if basePath != "" {
		group = huma.NewGroup(api, basePath)
	}

	registerDocs(router, basePath)
	registerHealth(group, cfg.Engine)
	registerDocuments(group, cfg.Engine)
	registerJobs(group, cfg.Engine)
	registerAdapters(group, cfg.Engine)
	registerTags(group, cfg.Engine)
	registerEvents(group, cfg.Engine)
	registerMe(group, cfg.Engine)
	registerOpenAPI(router, api, basePath)

	return router, nil
}

func newServiceError(status int, code, message string) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &serviceError{status: status, Type: code, Message: message}
}

// handleError maps engine errors to the envelope. Anything that is not a
// typed service error is logged and hidden behind InternalServerError.
func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	var fe auth.ForbiddenError
	if errors.As(err, &fe) {
		return newServiceError(http.StatusForbidden, types.ErrCodeAccessDenied, "not authorized: "+fe.Error())
	}
	var apiErr types.APIError
	if errors.As(err, &apiErr) {
		return newServiceError(statusFor(apiErr), apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	log.WithError(err).Error("request failed")
	return newServiceError(http.StatusInternalServerError, types.ErrCodeInternalServer, "internal error")
}

func statusFor(err types.APIError) int {
	switch err.ErrorCode() {
	case types.ErrCodeAccessDenied:
		return http.StatusForbidden
	case types.ErrCodeResourceNotFound:
		return http.StatusNotFound
	case types.ErrCodeConflict:
		return http.StatusConflict
	case types.ErrCodeThrottling, types.ErrCodeProvisionedThroughputExceeded:
		return http.StatusTooManyRequests
	}
	if err.ErrorFault() == types.FaultServer {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return types.ErrCodeValidation
	case http.StatusUnauthorized:
		return "UnrecognizedClientException"
	case http.StatusForbidden:
		return types.ErrCodeAccessDenied
	case http.StatusNotFound:
		return types.ErrCodeResourceNotFound
	case http.StatusConflict:
		return types.ErrCodeConflict
	case http.StatusTooManyRequests:
		return types.ErrCodeThrottling
	case http.StatusInternalServerError:
		return types.ErrCodeInternalServer
	default:
		return strings.ReplaceAll(http.StatusText(status), " ", "") + "Exception"
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		entry := log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		})
		if ww.Status() >= http.StatusInternalServerError {
			entry.Warn("request")
			return
		}
		entry.Debug("request")
	})
}

func bodyBytes(ctx context.Context) []byte {
	if buf, ok := ctx.Value(bodyBytesKey{}).([]byte); ok {
		return buf
	}
	return nil
}

// register exposes one operation as POST {base}/{op}. The body is decoded
// into In, the caller must hold the operation's permission, and the result
// is returned as the response body.
func register[In, Out any](api huma.API, e engine.Engine, tag, op, summary string, call func(context.Context, string, *In) (*Out, error)) {
	huma.Register(api, huma.Operation{
		OperationID: op,
		Method:      http.MethodPost,
		Path:        "/" + op,
		Summary:     summary,
		Tags:        []string{tag},
		RequestBody: requestBody[In](api),
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
		},
	}, func(ctx context.Context, _ *struct{}) (*struct{ Body *Out }, error) {
		principal, authErr := principalFromRequest(ctx)
		if authErr != nil {
			return nil, authErr
		}
		if err := e.Auth.RequireOperation(principal, op); err != nil {
			return nil, handleError(err)
		}
		in := new(In)
		if raw := bytes.TrimSpace(bodyBytes(ctx)); len(raw) > 0 {
			if err := json.Unmarshal(raw, in); err != nil {
				return nil, newServiceError(http.StatusBadRequest, types.ErrCodeValidation, "malformed request body: "+err.Error())
			}
		}
		out, err := call(ctx, principal.ActorID, in)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct{ Body *Out }{Body: out}, nil
	})
}

func requestBody[In any](api huma.API) *huma.RequestBody {
	schema := api.OpenAPI().Components.Schemas.Schema(reflect.TypeFor[In](), true, "")
	return &huma.RequestBody{
		Required: true,
		Content: map[string]*huma.MediaType{
			"application/json": {Schema: schema},
		},
	}
}

// actorless adapts operations that do not record who called them.
func actorless[In, Out any](call func(context.Context, *In) (*Out, error)) func(context.Context, string, *In) (*Out, error) {
	return func(ctx context.Context, _ string, in *In) (*Out, error) {
		return call(ctx, in)
	}
}

func registerDocuments(api huma.API, e engine.Engine) {
	register(api, e, "documents", "AnalyzeDocument", "Analyze a single-page document", e.AnalyzeDocument)
	register(api, e, "documents", "DetectDocumentText", "Detect lines and words", actorless(e.DetectDocumentText))
	register(api, e, "documents", "AnalyzeExpense", "Analyze an invoice or receipt", actorless(e.AnalyzeExpense))
	register(api, e, "documents", "AnalyzeID", "Analyze identity documents", actorless(e.AnalyzeID))
}

func registerJobs(api huma.API, e engine.Engine) {
	register(api, e, "jobs", "StartDocumentAnalysis", "Start an asynchronous document analysis", e.StartDocumentAnalysis)
	register(api, e, "jobs", "StartDocumentTextDetection", "Start an asynchronous text detection", e.StartDocumentTextDetection)
	register(api, e, "jobs", "StartExpenseAnalysis", "Start an asynchronous expense analysis", e.StartExpenseAnalysis)
	register(api, e, "jobs", "StartLendingAnalysis", "Start an asynchronous lending analysis", e.StartLendingAnalysis)
	register(api, e, "jobs", "GetDocumentAnalysis", "Get document analysis results", actorless(e.GetDocumentAnalysis))
	register(api, e, "jobs", "GetDocumentTextDetection", "Get text detection results", actorless(e.GetDocumentTextDetection))
	register(api, e, "jobs", "GetExpenseAnalysis", "Get expense analysis results", actorless(e.GetExpenseAnalysis))
	register(api, e, "jobs", "GetLendingAnalysis", "Get lending analysis results", actorless(e.GetLendingAnalysis))
	register(api, e, "jobs", "GetLendingAnalysisSummary", "Get the lending analysis summary", actorless(e.GetLendingAnalysisSummary))
}

func registerAdapters(api huma.API, e engine.Engine) {
	register(api, e, "adapters", "CreateAdapter", "Create an adapter", e.CreateAdapter)
	register(api, e, "adapters", "GetAdapter", "Get an adapter", actorless(e.GetAdapter))
	register(api, e, "adapters", "UpdateAdapter", "Update an adapter", actorless(e.UpdateAdapter))
	register(api, e, "adapters", "DeleteAdapter", "Delete an adapter and its versions", e.DeleteAdapter)
	register(api, e, "adapters", "ListAdapters", "List adapters", actorless(e.ListAdapters))
	register(api, e, "adapters", "CreateAdapterVersion", "Train a new adapter version", e.CreateAdapterVersion)
	register(api, e, "adapters", "GetAdapterVersion", "Get an adapter version", actorless(e.GetAdapterVersion))
	register(api, e, "adapters", "DeleteAdapterVersion", "Delete an adapter version", e.DeleteAdapterVersion)
	register(api, e, "adapters", "ListAdapterVersions", "List adapter versions", actorless(e.ListAdapterVersions))
}

func registerTags(api huma.API, e engine.Engine) {
	register(api, e, "tags", "ListTagsForResource", "List the tags of an adapter or adapter version", actorless(e.ListTagsForResource))
	register(api, e, "tags", "TagResource", "Add tags to a resource", actorless(e.TagResource))
	register(api, e, "tags", "UntagResource", "Remove tags from a resource", actorless(e.UntagResource))
}

func registerDocs(r chi.Router, basePath string) {
	r.Get(path.Join("/", basePath, "docs"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML(basePath))
	})
}

// registerOpenAPI serves the OpenAPI document. It is completed and encoded
// once, on first request, after every operation has been registered.
func registerOpenAPI(r chi.Router, api huma.API, basePath string) {
	spec := sync.OnceValues(func() ([]byte, error) {
		oas := api.OpenAPI()
		ensureDefaultErrorResponses(oas)
		applyAuthSecurity(oas, basePath)
		return json.Marshal(oas)
	})
	r.Get(path.Join("/", basePath, "openapi.json"), func(w http.ResponseWriter, r *http.Request) {
		data, err := spec()
		if err != nil {
			log.WithError(err).Error("encode openapi document failed")
			respondStatusError(w, newServiceError(http.StatusInternalServerError, types.ErrCodeInternalServer, "openapi document unavailable"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
}

func ensureDefaultErrorResponses(oas *huma.OpenAPI) {
	if oas == nil || oas.Paths == nil {
		return
	}
	if oas.Components.Schemas != nil {
		oas.Components.Schemas.Schema(reflect.TypeFor[serviceError](), true, "ServiceError")
	}
	for _, item := range oas.Paths {
		for _, op := range []*huma.Operation{item.Get, item.Post} {
			if op == nil {
				continue
			}
			if op.Responses == nil {
				op.Responses = map[string]*huma.Response{}
			}
			op.Responses["default"] = &huma.Response{
				Description: "Error",
				Content: map[string]*huma.MediaType{
					"application/json": {
						Schema: &huma.Schema{Ref: "#/components/schemas/ServiceError"},
					},
				},
			}
		}
	}
}

func applyAuthSecurity(oas *huma.OpenAPI, basePath string) {
	if oas == nil {
		return
	}
	if oas.Components == nil {
		oas.Components = &huma.Components{}
	}
	if oas.Components.SecuritySchemes == nil {
		oas.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	oas.Components.SecuritySchemes["bearerAuth"] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
	oas.Components.SecuritySchemes["apiKeyAuth"] = &huma.SecurityScheme{
		Type: "apiKey",
		In:   "header",
		Name: "X-Api-Key",
	}
	security := []map[string][]string{
		{"bearerAuth": {}},
		{"apiKeyAuth": {}},
	}
	oas.Security = security
	healthPath := path.Join("/", basePath, "health")
	for route, item := range oas.Paths {
		for _, op := range []*huma.Operation{item.Get, item.Post} {
			if op == nil {
				continue
			}
			if route == healthPath {
				op.Security = []map[string][]string{}
				continue
			}
			op.Security = security
		}
	}
}

func swaggerHTML(basePath string) string {
	specURL := path.Join("/", basePath, "openapi.json")
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Document Analysis API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        SwaggerUIBundle({
          url: '%s',
          dom_id: '#swagger-ui'
        });
      };
    </script>
    <p style="padding: 1rem; font-family: sans-serif; color: #444;">
      Every operation is a POST of its JSON input. Authenticate with Authorization: Bearer &lt;token&gt; or X-Api-Key.
    </p>
  </body>
</html>`, specURL)
}

type healthBody struct {
	Status      string `json:"status" example:"ok"`
	Database    string `json:"database" example:"ok"`
	ObjectStore string `json:"object_store" example:"ok"`
}

func registerHealth(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Errors:      []int{http.StatusServiceUnavailable},
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body healthBody `json:"body"`
	}, error) {
		body := healthBody{Status: "ok", Database: "ok", ObjectStore: "ok"}
		if err := e.DB.PingContext(ctx); err != nil {
			log.WithError(err).Warn("health: database unavailable")
			body.Status, body.Database = "degraded", err.Error()
		}
		if err := e.Store.Ping(ctx); err != nil {
			log.WithError(err).Warn("health: object store unavailable")
			body.Status, body.ObjectStore = "degraded", err.Error()
		}
		if body.Status != "ok" {
			return nil, newServiceError(http.StatusServiceUnavailable, "ServiceUnavailableException", "database: "+body.Database+", object store: "+body.ObjectStore)
		}
		return &struct {
			Body healthBody `json:"body"`
		}{Body: body}, nil
	})
}

type paginatedEvents struct {
	Items      []domain.Event `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func registerEvents(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/events",
		Summary:     "List service events after a cursor",
		Tags:        []string{"events"},
		Errors:      []int{http.StatusBadRequest, http.StatusForbidden},
	}, func(ctx context.Context, input *struct {
		Limit  int    `query:"limit" default:"50"`
		Cursor string `query:"cursor"`
	}) (*struct {
		Body paginatedEvents `json:"body"`
	}, error) {
		principal, authErr := principalFromRequest(ctx)
		if authErr != nil {
			return nil, authErr
		}
		if err := e.Auth.Require(principal, auth.PermJobRead); err != nil {
			return nil, handleError(err)
		}
		limit := normalizeLimit(input.Limit)
		var cursor int64
		if input.Cursor != "" {
			parsed, err := strconv.ParseInt(input.Cursor, 10, 64)
			if err != nil || parsed < 0 {
				return nil, newServiceError(http.StatusBadRequest, types.ErrCodeValidation, "invalid cursor "+input.Cursor)
			}
			cursor = parsed
		}
		items, err := e.Repo.EventsAfter(ctx, limit+1, cursor)
		if err != nil {
			return nil, handleError(err)
		}
		resp := paginatedEvents{Items: []domain.Event{}}
		if len(items) > limit {
			items = items[:limit]
			resp.NextCursor = strconv.FormatInt(items[limit-1].ID, 10)
		}
		resp.Items = append(resp.Items, items...)
		return &struct {
			Body paginatedEvents `json:"body"`
		}{Body: resp}, nil
	})
}

// WhoAmIResponse describes the caller of a request.
type WhoAmIResponse struct {
	ActorID     string   `json:"actor_id"`
	Source      string   `json:"source"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

func registerMe(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/me",
		Summary:     "Current principal",
		Errors:      []int{http.StatusUnauthorized},
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body WhoAmIResponse `json:"body"`
	}, error) {
		principal, authErr := principalFromRequest(ctx)
		if authErr != nil {
			return nil, authErr
		}
		return &struct {
			Body WhoAmIResponse `json:"body"`
		}{Body: WhoAmIResponse{
			ActorID:     principal.ActorID,
			Source:      principal.Source,
			Roles:       nonNil(principal.Roles),
			Permissions: nonNil(e.Auth.Permissions(principal.Roles)),
		}}, nil
	})
}

func normalizeLimit(in int) int {
	if in <= 0 {
		return 50
	}
	if in > 500 {
		return 500
	}
	return in
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
