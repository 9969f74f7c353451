package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"docanalysis/internal/analyzer"
	"docanalysis/internal/domain"
	"docanalysis/internal/events"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

const (
	runnerBatch = 10

	// WarningNoText marks pages without a text layer.
	WarningNoText = "NO_TEXT_DETECTED"
)

// jobAPI names the Start operation of a job kind in notifications.
var jobAPI = map[string]string{
	domain.JobKindDocumentAnalysis: "StartDocumentAnalysis",
	domain.JobKindTextDetection:    "StartDocumentTextDetection",
	domain.JobKindExpenseAnalysis:  "StartExpenseAnalysis",
	domain.JobKindLendingAnalysis:  "StartLendingAnalysis",
}

// resultKey is the result list of a job kind in output files.
var resultKey = map[string]string{
	domain.JobKindDocumentAnalysis: "Blocks",
	domain.JobKindTextDetection:    "Blocks",
	domain.JobKindExpenseAnalysis:  "ExpenseDocuments",
	domain.JobKindLendingAnalysis:  "Results",
}

// jobResult is the outcome of running one job.
type jobResult struct {
	pages    int
	items    []json.RawMessage
	warnings []types.Warning
	summary  *types.LendingSummary
}

// Run processes queued jobs until ctx is done.
func (e Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.Config.Limits.PollInterval())
	defer ticker.Stop()
	for {
		if _, err := e.ProcessPending(ctx, runnerBatch); err != nil && ctx.Err() == nil {
			e.log.WithError(err).Debug("process jobs incomplete")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessPending runs up to limit queued jobs, oldest first, and returns the
// number that reached a terminal status. A job that cannot be completed stays
// queued and does not hold back the ones behind it; its error is logged and
// joined into the returned error.
func (e Engine) ProcessPending(ctx context.Context, limit int) (int, error) {
	jobs, err := e.Repo.PendingJobs(ctx, limit)
	if err != nil {
		return 0, err
	}
	done := 0
	var errs []error
	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		if err := e.runJob(ctx, j); err != nil {
			e.log.WithError(err).WithField("job_id", j.ID).Warn("run job failed")
			errs = append(errs, fmt.Errorf("job %s: %w", j.ID, err))
			continue
		}
		done++
	}
	return done, errors.Join(errs...)
}

// runJob executes j and stores its terminal state. Service errors fail the
// job; other errors leave it queued for the next pass.
func (e Engine) runJob(ctx context.Context, j domain.Job) error {
	ctx, span := e.span(ctx, "RunJob", attribute.String("docanalysis.job_id", j.ID), attribute.String("docanalysis.job_kind", j.Kind))
	defer span.End()
	log := e.log.WithField("job_id", j.ID)

	res, err := e.execute(ctx, j)
	switch {
	case err == nil:
		j.Status = string(types.JobStatusSucceeded)
		if len(res.warnings) > 0 && len(res.warnings[0].Pages) < res.pages {
			j.Status = string(types.JobStatusPartialSuccess)
		}
	case IsServiceError(err):
		var apiErr types.APIError
		errors.As(err, &apiErr)
		j.Status = string(types.JobStatusFailed)
		j.StatusMessage = apiErr.ErrorMessage()
		res = jobResult{}
	default:
		return err
	}
	if j.Status != string(types.JobStatusFailed) && j.OutputBucket != "" {
		if err := e.writeOutput(ctx, j, res); err != nil {
			log.WithError(err).Warn("write job output failed")
			j.Status = string(types.JobStatusFailed)
			j.StatusMessage = fmt.Sprintf("unable to write output to s3://%s/%s", j.OutputBucket, j.OutputPrefix)
			res = jobResult{}
		}
	}
	j.Pages = res.pages
	j.CompletedAt = e.stamp()
	if len(res.warnings) > 0 {
		data, _ := json.Marshal(res.warnings)
		j.WarningsJSON = string(data)
	}
	if res.summary != nil {
		data, err := json.Marshal(res.summary)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		j.SummaryJSON = string(data)
	}
	items := make([]string, len(res.items))
	for i, it := range res.items {
		items[i] = string(it)
	}

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := e.Repo.InsertJobItems(ctx, tx, j.ID, items); err != nil {
		return fmt.Errorf("store results: %w", err)
	}
	if err := e.Repo.CompleteJob(ctx, tx, j); err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	payload := events.EventPayload{
		"JobId":     j.ID,
		"Status":    j.Status,
		"API":       jobAPI[j.Kind],
		"Timestamp": e.now().UnixMilli(),
	}
	if j.JobTag != "" {
		payload["JobTag"] = j.JobTag
	}
	if j.SNSTopicArn != "" {
		payload["SNSTopicArn"] = j.SNSTopicArn
	}
	var loc struct{ DocumentLocation *types.DocumentLocation }
	if json.Unmarshal([]byte(j.RequestJSON), &loc) == nil && loc.DocumentLocation != nil {
		payload["DocumentLocation"] = map[string]string{
			"S3Bucket":     loc.DocumentLocation.S3Object.GetBucket(),
			"S3ObjectName": loc.DocumentLocation.S3Object.GetName(),
		}
	}
	if err := e.Events.Append(ctx, tx, events.TypeJobCompleted, "job", j.ID, j.ActorID, payload); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	span.SetAttributes(attribute.String("docanalysis.job_status", j.Status), attribute.Int("docanalysis.items", len(items)))
	log.WithField("status", j.Status).WithField("pages", j.Pages).Info("job finished")
	return nil
}

// execute replays the stored request of j against the analyzer.
func (e Engine) execute(ctx context.Context, j domain.Job) (jobResult, error) {
	var loc struct{ DocumentLocation *types.DocumentLocation }
	if err := json.Unmarshal([]byte(j.RequestJSON), &loc); err != nil || loc.DocumentLocation == nil {
		return jobResult{}, apiError(errInternal, "stored request of job %s is unreadable", j.ID)
	}
	doc, err := e.loadDocument(ctx, &types.Document{S3Object: loc.DocumentLocation.S3Object}, e.Config.Limits.AsyncMaxBytes)
	if err != nil {
		return jobResult{}, err
	}
	if len(doc.Pages) > e.Config.Limits.AsyncMaxPages {
		return jobResult{}, apiError(errUnsupportedDocument, "document has %d pages, the limit is %d", len(doc.Pages), e.Config.Limits.AsyncMaxPages)
	}
	res := jobResult{pages: len(doc.Pages), warnings: noTextWarnings(doc)}

	switch j.Kind {
	case domain.JobKindDocumentAnalysis:
		var in docanalysis.StartDocumentAnalysisInput
		if err := json.Unmarshal([]byte(j.RequestJSON), &in); err != nil {
			return jobResult{}, apiError(errInternal, "stored request of job %s is unreadable", j.ID)
		}
		var adapted func(int32) bool
		if adapted, err = e.resolveAdapters(ctx, in.AdaptersConfig, len(doc.Pages)); err != nil {
			return jobResult{}, err
		}
		opts := analyzer.Options{Features: in.FeatureTypes, AdapterPages: adapted}
		if in.QueriesConfig != nil {
			opts.Queries = in.QueriesConfig.Queries
		}
		res.items, err = marshalItems(analyzer.Analyze(doc, opts))
	case domain.JobKindTextDetection:
		res.items, err = marshalItems(analyzer.DetectText(doc))
	case domain.JobKindExpenseAnalysis:
		res.items, err = marshalItems(analyzer.Expense(doc))
	case domain.JobKindLendingAnalysis:
		results, summary := analyzer.Lending(doc, e.lendingCatalog())
		res.summary = &summary
		res.items, err = marshalItems(results)
	default:
		return jobResult{}, fmt.Errorf("unknown job kind %s", j.Kind)
	}
	return res, err
}

func (e Engine) lendingCatalog() []analyzer.PageType {
	catalog := make([]analyzer.PageType, len(e.Config.Lending.PageTypes))
	for i, pt := range e.Config.Lending.PageTypes {
		catalog[i] = analyzer.PageType{Type: pt.Type, Keywords: pt.Keywords}
	}
	return catalog
}

func noTextWarnings(doc *analyzer.Doc) []types.Warning {
	var pages []int32
	for _, p := range doc.Pages {
		if len(p.Lines) == 0 {
			pages = append(pages, p.Number)
		}
	}
	if len(pages) == 0 {
		return nil
	}
	return []types.Warning{{ErrorCode: ptr(WarningNoText), Pages: pages}}
}

func marshalItems[T any](items []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(items))
	for i := range items {
		data, err := json.Marshal(items[i])
		if err != nil {
			return nil, fmt.Errorf("marshal result item: %w", err)
		}
		out[i] = data
	}
	return out, nil
}

// writeOutput stores the results of j under {prefix}/{jobId}/{n}, one file
// per page of DefaultPageSize results. Lending jobs add a summary file.
func (e Engine) writeOutput(ctx context.Context, j domain.Job, res jobResult) error {
	base := path.Join(j.OutputPrefix, j.ID)
	size := max(int(e.Config.Limits.DefaultPageSize), 1)
	n := 0
	for start := 0; start == 0 || start < len(res.items); start += size {
		n++
		body := map[string]any{
			"DocumentMetadata": metadata(res.pages),
			"JobStatus":        j.Status,
			resultKey[j.Kind]:  res.items[start:min(start+size, len(res.items))],
		}
		if len(res.warnings) > 0 {
			body["Warnings"] = res.warnings
		}
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		if _, err := e.Store.Put(ctx, j.OutputBucket, path.Join(base, strconv.Itoa(n)), data, "application/json"); err != nil {
			return err
		}
	}
	if res.summary != nil {
		data, err := json.Marshal(map[string]any{"Summary": res.summary, "DocumentMetadata": metadata(res.pages)})
		if err != nil {
			return err
		}
		if _, err := e.Store.Put(ctx, j.OutputBucket, path.Join(base, "summary", "1"), data, "application/json"); err != nil {
			return err
		}
	}
	return nil
}
