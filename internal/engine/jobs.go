package engine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"docanalysis/internal/domain"
	"docanalysis/internal/repo"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

// jobRequest holds the fields every Start operation shares.
type jobRequest struct {
	kind     string
	location *types.DocumentLocation
	token    *string
	tag      *string
	channel  *types.NotificationChannel
	output   *types.OutputConfig
	kmsKey   *string
	// input is the full request, hashed for idempotency and replayed by
	// the runner.
	input any
}

// startJob queues an asynchronous job and returns its id. A repeated
// ClientRequestToken with the same parameters returns the original job.
func (e Engine) startJob(ctx context.Context, actorID string, req jobRequest) (string, error) {
	if err := checkKMSKey(req.kmsKey); err != nil {
		return "", err
	}
	obj := req.location.S3Object
	info, err := e.Store.Stat(ctx, obj.GetBucket(), obj.GetName(), obj.GetVersion())
	if err != nil {
		return "", objectError(err, obj.GetBucket(), obj.GetName())
	}
	if info.Size > e.Config.Limits.AsyncMaxBytes {
		return "", tooLarge(info.Size, e.Config.Limits.AsyncMaxBytes)
	}
	raw, err := json.Marshal(req.input)
	if err != nil {
		return "", fmt.Errorf("marshal job request: %w", err)
	}
	hash := strconv.FormatUint(xxhash.Sum64(raw), 16)

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()
	if req.token != nil {
		existing, err := e.Repo.GetJobByToken(ctx, tx, req.kind, *req.token)
		switch {
		case err == nil:
			if existing.RequestHash != hash {
				return "", apiError(errIdempotentMismatch, "ClientRequestToken %s was used with different parameters", *req.token)
			}
			return existing.ID, nil
		case !errors.Is(err, repo.ErrNotFound):
			return "", storageError(err)
		}
	}
	running, err := e.Repo.CountJobs(ctx, tx, string(types.JobStatusInProgress))
	if err != nil {
		return "", storageError(err)
	}
	if running >= e.Config.Limits.MaxConcurrentJobs {
		return "", apiError(errLimitExceeded, "%d jobs are already in progress", running)
	}
	job := domain.Job{
		ID:                 strings.ReplaceAll(uuid.NewString(), "-", ""),
		Kind:               req.kind,
		Status:             string(types.JobStatusInProgress),
		ClientRequestToken: deref(req.token),
		RequestHash:        hash,
		RequestJSON:        string(raw),
		JobTag:             deref(req.tag),
		KMSKeyID:           deref(req.kmsKey),
		ModelVersion:       e.Config.Service.ModelVersion,
		ActorID:            actorID,
		CreatedAt:          e.stamp(),
	}
	if req.channel != nil {
		job.SNSTopicArn = req.channel.GetSNSTopicArn()
	}
	if req.output != nil {
		job.OutputBucket = req.output.GetS3Bucket()
		job.OutputPrefix = req.output.GetS3Prefix()
	}
	if err := e.Repo.InsertJob(ctx, tx, job); err != nil {
		return "", storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return "", storageError(err)
	}
	e.log.WithField("job_id", job.ID).WithField("kind", job.Kind).Info("job queued")
	return job.ID, nil
}

func (e Engine) StartDocumentAnalysis(ctx context.Context, actorID string, in *docanalysis.StartDocumentAnalysisInput) (*docanalysis.StartDocumentAnalysisOutput, error) {
	ctx, span := e.span(ctx, "StartDocumentAnalysis")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := checkFeatures(in.FeatureTypes, in.QueriesConfig, in.AdaptersConfig); err != nil {
		return nil, err
	}
	if in.AdaptersConfig != nil {
		// Page coverage is checked again once the page count is known.
		if _, err := e.resolveAdapters(ctx, in.AdaptersConfig, 1); err != nil {
			return nil, err
		}
	}
	id, err := e.startJob(ctx, actorID, jobRequest{
		kind: domain.JobKindDocumentAnalysis, location: in.DocumentLocation, token: in.ClientRequestToken, tag: in.JobTag,
		channel: in.NotificationChannel, output: in.OutputConfig, kmsKey: in.KMSKeyId, input: in,
	})
	if err != nil {
		return nil, err
	}
	return &docanalysis.StartDocumentAnalysisOutput{JobId: ptr(id)}, nil
}

func (e Engine) StartDocumentTextDetection(ctx context.Context, actorID string, in *docanalysis.StartDocumentTextDetectionInput) (*docanalysis.StartDocumentTextDetectionOutput, error) {
	ctx, span := e.span(ctx, "StartDocumentTextDetection")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, err := e.startJob(ctx, actorID, jobRequest{
		kind: domain.JobKindTextDetection, location: in.DocumentLocation, token: in.ClientRequestToken, tag: in.JobTag,
		channel: in.NotificationChannel, output: in.OutputConfig, kmsKey: in.KMSKeyId, input: in,
	})
	if err != nil {
		return nil, err
	}
	return &docanalysis.StartDocumentTextDetectionOutput{JobId: ptr(id)}, nil
}

func (e Engine) StartExpenseAnalysis(ctx context.Context, actorID string, in *docanalysis.StartExpenseAnalysisInput) (*docanalysis.StartExpenseAnalysisOutput, error) {
	ctx, span := e.span(ctx, "StartExpenseAnalysis")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, err := e.startJob(ctx, actorID, jobRequest{
		kind: domain.JobKindExpenseAnalysis, location: in.DocumentLocation, token: in.ClientRequestToken, tag: in.JobTag,
		channel: in.NotificationChannel, output: in.OutputConfig, kmsKey: in.KMSKeyId, input: in,
	})
	if err != nil {
		return nil, err
	}
	return &docanalysis.StartExpenseAnalysisOutput{JobId: ptr(id)}, nil
}

func (e Engine) StartLendingAnalysis(ctx context.Context, actorID string, in *docanalysis.StartLendingAnalysisInput) (*docanalysis.StartLendingAnalysisOutput, error) {
	ctx, span := e.span(ctx, "StartLendingAnalysis")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, err := e.startJob(ctx, actorID, jobRequest{
		kind: domain.JobKindLendingAnalysis, location: in.DocumentLocation, token: in.ClientRequestToken, tag: in.JobTag,
		channel: in.NotificationChannel, output: in.OutputConfig, kmsKey: in.KMSKeyId, input: in,
	})
	if err != nil {
		return nil, err
	}
	return &docanalysis.StartLendingAnalysisOutput{JobId: ptr(id)}, nil
}

// pageSize clamps MaxResults to the configured bounds.
func (e Engine) pageSize(maxResults *int32) int {
	size := e.Config.Limits.DefaultPageSize
	if maxResults != nil && *maxResults > 0 {
		size = min(*maxResults, e.Config.Limits.MaxPageSize)
	}
	return int(size)
}

// NextToken values are opaque to callers: base64 of "<jobId>:<seq>".
func encodeJobToken(jobID string, seq int) *string {
	return ptr(base64.RawURLEncoding.EncodeToString([]byte(jobID + ":" + strconv.Itoa(seq))))
}

func decodeJobToken(jobID string, token *string) (int, error) {
	if token == nil {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(*token)
	if err != nil {
		return 0, apiError(errInvalidParameter, "malformed NextToken")
	}
	owner, seq, ok := strings.Cut(string(raw), ":")
	if !ok || owner != jobID {
		return 0, apiError(errInvalidParameter, "NextToken does not belong to job %s", jobID)
	}
	n, err := strconv.Atoi(seq)
	if err != nil || n < 0 {
		return 0, apiError(errInvalidParameter, "malformed NextToken")
	}
	return n, nil
}

// jobPage is one page of stored job results.
type jobPage struct {
	job   domain.Job
	items []repo.JobItem
	next  *string
}

func (p jobPage) status() types.JobStatus { return types.JobStatus(p.job.Status) }

func (p jobPage) metadata() *types.DocumentMetadata {
	if p.status() == types.JobStatusInProgress {
		return nil
	}
	return metadata(p.job.Pages)
}

func (p jobPage) statusMessage() *string {
	if p.job.StatusMessage == "" {
		return nil
	}
	return ptr(p.job.StatusMessage)
}

func (p jobPage) warnings() []types.Warning {
	if p.job.WarningsJSON == "" {
		return nil
	}
	var w []types.Warning
	_ = json.Unmarshal([]byte(p.job.WarningsJSON), &w)
	return w
}

// loadJob returns the job with id, which must be of kind.
func (e Engine) loadJob(ctx context.Context, kind, id string) (domain.Job, error) {
	j, err := e.Repo.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return j, apiError(errInvalidJobID, "job %s not found", id)
		}
		return j, storageError(err)
	}
	if j.Kind != kind {
		return j, apiError(errInvalidJobID, "job %s is a %s job", id, j.Kind)
	}
	return j, nil
}

// readJob loads a job of kind and one page of its results. Jobs still in
// progress have no results yet.
func (e Engine) readJob(ctx context.Context, kind string, jobID *string, maxResults *int32, nextToken *string) (jobPage, error) {
	j, err := e.loadJob(ctx, kind, deref(jobID))
	if err != nil {
		return jobPage{}, err
	}
	after, err := decodeJobToken(j.ID, nextToken)
	if err != nil {
		return jobPage{}, err
	}
	page := jobPage{job: j}
	if page.status() == types.JobStatusInProgress {
		return page, nil
	}
	limit := e.pageSize(maxResults)
	items, err := e.Repo.JobItems(ctx, j.ID, after, limit+1)
	if err != nil {
		return jobPage{}, storageError(err)
	}
	if len(items) > limit {
		items = items[:limit]
		page.next = encodeJobToken(j.ID, items[limit-1].Seq)
	}
	page.items = items
	return page, nil
}

func decodeItems[T any](items []repo.JobItem) ([]T, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		if err := json.Unmarshal([]byte(it.JSON), &out[i]); err != nil {
			return nil, fmt.Errorf("decode result item %d: %w", it.Seq, err)
		}
	}
	return out, nil
}

func (e Engine) GetDocumentAnalysis(ctx context.Context, in *docanalysis.GetDocumentAnalysisInput) (*docanalysis.GetDocumentAnalysisOutput, error) {
	ctx, span := e.span(ctx, "GetDocumentAnalysis", attribute.String("docanalysis.job_id", in.GetJobId()))
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	page, err := e.readJob(ctx, domain.JobKindDocumentAnalysis, in.JobId, in.MaxResults, in.NextToken)
	if err != nil {
		return nil, err
	}
	blocks, err := decodeItems[types.Block](page.items)
	if err != nil {
		return nil, err
	}
	return &docanalysis.GetDocumentAnalysisOutput{
		DocumentMetadata:            page.metadata(),
		JobStatus:                   page.status(),
		NextToken:                   page.next,
		Blocks:                      blocks,
		Warnings:                    page.warnings(),
		StatusMessage:               page.statusMessage(),
		AnalyzeDocumentModelVersion: ptr(page.job.ModelVersion),
	}, nil
}

func (e Engine) GetDocumentTextDetection(ctx context.Context, in *docanalysis.GetDocumentTextDetectionInput) (*docanalysis.GetDocumentTextDetectionOutput, error) {
	ctx, span := e.span(ctx, "GetDocumentTextDetection", attribute.String("docanalysis.job_id", in.GetJobId()))
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	page, err := e.readJob(ctx, domain.JobKindTextDetection, in.JobId, in.MaxResults, in.NextToken)
	if err != nil {
		return nil, err
	}
	blocks, err := decodeItems[types.Block](page.items)
	if err != nil {
		return nil, err
	}
	return &docanalysis.GetDocumentTextDetectionOutput{
		DocumentMetadata:               page.metadata(),
		JobStatus:                      page.status(),
		NextToken:                      page.next,
		Blocks:                         blocks,
		Warnings:                       page.warnings(),
		StatusMessage:                  page.statusMessage(),
		DetectDocumentTextModelVersion: ptr(page.job.ModelVersion),
	}, nil
}

func (e Engine) GetExpenseAnalysis(ctx context.Context, in *docanalysis.GetExpenseAnalysisInput) (*docanalysis.GetExpenseAnalysisOutput, error) {
	ctx, span := e.span(ctx, "GetExpenseAnalysis", attribute.String("docanalysis.job_id", in.GetJobId()))
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	page, err := e.readJob(ctx, domain.JobKindExpenseAnalysis, in.JobId, in.MaxResults, in.NextToken)
	if err != nil {
		return nil, err
	}
	docs, err := decodeItems[types.ExpenseDocument](page.items)
	if err != nil {
		return nil, err
	}
	return &docanalysis.GetExpenseAnalysisOutput{
		DocumentMetadata:           page.metadata(),
		JobStatus:                  page.status(),
		NextToken:                  page.next,
		ExpenseDocuments:           docs,
		Warnings:                   page.warnings(),
		StatusMessage:              page.statusMessage(),
		AnalyzeExpenseModelVersion: ptr(page.job.ModelVersion),
	}, nil
}

func (e Engine) GetLendingAnalysis(ctx context.Context, in *docanalysis.GetLendingAnalysisInput) (*docanalysis.GetLendingAnalysisOutput, error) {
	ctx, span := e.span(ctx, "GetLendingAnalysis", attribute.String("docanalysis.job_id", in.GetJobId()))
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	page, err := e.readJob(ctx, domain.JobKindLendingAnalysis, in.JobId, in.MaxResults, in.NextToken)
	if err != nil {
		return nil, err
	}
	results, err := decodeItems[types.LendingResult](page.items)
	if err != nil {
		return nil, err
	}
	return &docanalysis.GetLendingAnalysisOutput{
		DocumentMetadata:           page.metadata(),
		JobStatus:                  page.status(),
		NextToken:                  page.next,
		Results:                    results,
		Warnings:                   page.warnings(),
		StatusMessage:              page.statusMessage(),
		AnalyzeLendingModelVersion: ptr(page.job.ModelVersion),
	}, nil
}

// GetLendingAnalysisSummary returns the document groups of a finished
// lending job.
func (e Engine) GetLendingAnalysisSummary(ctx context.Context, in *docanalysis.GetLendingAnalysisSummaryInput) (*docanalysis.GetLendingAnalysisSummaryOutput, error) {
	ctx, span := e.span(ctx, "GetLendingAnalysisSummary", attribute.String("docanalysis.job_id", in.GetJobId()))
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	j, err := e.loadJob(ctx, domain.JobKindLendingAnalysis, in.GetJobId())
	if err != nil {
		return nil, err
	}
	page := jobPage{job: j}
	out := &docanalysis.GetLendingAnalysisSummaryOutput{
		DocumentMetadata:           page.metadata(),
		JobStatus:                  page.status(),
		Warnings:                   page.warnings(),
		StatusMessage:              page.statusMessage(),
		AnalyzeLendingModelVersion: ptr(page.job.ModelVersion),
	}
	if page.job.SummaryJSON != "" {
		out.Summary = &types.LendingSummary{}
		if err := json.Unmarshal([]byte(page.job.SummaryJSON), out.Summary); err != nil {
			return nil, fmt.Errorf("decode lending summary: %w", err)
		}
	}
	return out, nil
}
