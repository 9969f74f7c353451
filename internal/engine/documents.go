package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"docanalysis/internal/analyzer"
	"docanalysis/internal/domain"
	"docanalysis/internal/events"
	"docanalysis/internal/repo"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

// Human loop activation reasons.
const (
	ReasonConditionsEvaluation = "ConditionsEvaluation"
	ReasonContentClassifiers   = "ContentClassifiers"
)

// checkInline fails with DocumentTooLargeException for oversized inline
// bytes. It runs ahead of input validation, which would otherwise report
// the size as a parameter error.
func (e Engine) checkInline(docs ...*types.Document) error {
	for _, d := range docs {
		if d != nil && int64(len(d.Bytes)) > e.Config.Limits.SyncMaxBytes {
			return tooLarge(int64(len(d.Bytes)), e.Config.Limits.SyncMaxBytes)
		}
	}
	return nil
}

// fetch reads an S3Object from the object store, enforcing limit.
func (e Engine) fetch(ctx context.Context, obj *types.S3Object, limit int64) ([]byte, error) {
	bucket, name, version := obj.GetBucket(), obj.GetName(), obj.GetVersion()
	info, err := e.Store.Stat(ctx, bucket, name, version)
	if err != nil {
		return nil, objectError(err, bucket, name)
	}
	if info.Size > limit {
		return nil, tooLarge(info.Size, limit)
	}
	data, _, err := e.Store.Get(ctx, bucket, name, version)
	if err != nil {
		return nil, objectError(err, bucket, name)
	}
	return data, nil
}

// loadDocument resolves inline bytes or an S3Object and reads its text
// layer.
func (e Engine) loadDocument(ctx context.Context, d *types.Document, limit int64) (*analyzer.Doc, error) {
	data := d.Bytes
	if d.S3Object != nil {
		var err error
		if data, err = e.fetch(ctx, d.S3Object, limit); err != nil {
			return nil, err
		}
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(int64(len(data)), limit)
	}
	doc, err := analyzer.Load(data)
	if err != nil {
		return nil, documentError(err)
	}
	return doc, nil
}

// loadSinglePage loads a document for a synchronous operation.
func (e Engine) loadSinglePage(ctx context.Context, d *types.Document) (*analyzer.Doc, error) {
	doc, err := e.loadDocument(ctx, d, e.Config.Limits.SyncMaxBytes)
	if err != nil {
		return nil, err
	}
	if len(doc.Pages) > 1 {
		return nil, apiError(errUnsupportedDocument, "synchronous operations accept single-page documents, got %d pages", len(doc.Pages))
	}
	return doc, nil
}

func metadata(pages int) *types.DocumentMetadata {
	return &types.DocumentMetadata{Pages: ptr(int32(pages))}
}

// checkFeatures enforces the pairing of QUERIES with a QueriesConfig and of
// adapters with QUERIES.
func checkFeatures(features []types.FeatureType, queries *types.QueriesConfig, adapters *types.AdaptersConfig) error {
	for _, f := range features {
		if !slices.Contains(f.Values(), f) {
			return apiError(errInvalidParameter, "unknown feature type %s", f)
		}
	}
	hasQueries := slices.Contains(features, types.FeatureTypeQueries)
	switch {
	case hasQueries && queries == nil:
		return apiError(errInvalidParameter, "QueriesConfig is required with the QUERIES feature")
	case !hasQueries && queries != nil:
		return apiError(errInvalidParameter, "QueriesConfig requires the QUERIES feature")
	case !hasQueries && adapters != nil:
		return apiError(errInvalidParameter, "AdaptersConfig requires the QUERIES feature")
	}
	return nil
}

// resolveAdapters checks the requested adapter versions and returns the
// pages they cover.
func (e Engine) resolveAdapters(ctx context.Context, cfg *types.AdaptersConfig, pages int) (func(int32) bool, error) {
	if cfg == nil {
		return nil, nil
	}
	covered := map[int32]string{}
	for _, a := range cfg.Adapters {
		id, version := a.GetAdapterId(), a.GetVersion()
		if _, err := e.Repo.GetAdapter(ctx, nil, id); err != nil {
			return nil, notFound("adapter", id, err)
		}
		v, err := e.Repo.GetAdapterVersion(ctx, nil, id, version)
		if err != nil {
			return nil, notFound("adapter version", id+"/"+version, err)
		}
		if v.Status != string(types.AdapterVersionStatusActive) {
			return nil, apiError(errInvalidParameter, "adapter version %s/%s is %s, not ACTIVE", id, version, v.Status)
		}
		for p := range analyzer.PageSet(a.Pages, int32(pages)) {
			if other, taken := covered[p]; taken {
				return nil, apiError(errInvalidParameter, "page %d is assigned to adapters %s and %s", p, other, id)
			}
			covered[p] = id
		}
	}
	return func(p int32) bool {
		_, ok := covered[p]
		return ok
	}, nil
}

// AnalyzeDocument returns the blocks of a single-page document for the
// requested features.
func (e Engine) AnalyzeDocument(ctx context.Context, actorID string, in *docanalysis.AnalyzeDocumentInput) (*docanalysis.AnalyzeDocumentOutput, error) {
	ctx, span := e.span(ctx, "AnalyzeDocument")
	defer span.End()
	if err := e.throttle(); err != nil {
		return nil, err
	}
	if err := e.checkInline(in.Document); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := checkFeatures(in.FeatureTypes, in.QueriesConfig, in.AdaptersConfig); err != nil {
		return nil, err
	}
	doc, err := e.loadSinglePage(ctx, in.Document)
	if err != nil {
		return nil, err
	}
	adapted, err := e.resolveAdapters(ctx, in.AdaptersConfig, len(doc.Pages))
	if err != nil {
		return nil, err
	}
	opts := analyzer.Options{Features: in.FeatureTypes, AdapterPages: adapted}
	if in.QueriesConfig != nil {
		opts.Queries = in.QueriesConfig.Queries
	}
	out := &docanalysis.AnalyzeDocumentOutput{
		DocumentMetadata:            metadata(len(doc.Pages)),
		Blocks:                      analyzer.Analyze(doc, opts),
		AnalyzeDocumentModelVersion: e.modelVersion(),
	}
	span.SetAttributes(attribute.Int("docanalysis.blocks", len(out.Blocks)))
	if in.HumanLoopConfig != nil {
		if out.HumanLoopActivationOutput, err = e.activateHumanLoop(ctx, actorID, in.HumanLoopConfig, out.Blocks); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DetectDocumentText returns the PAGE, LINE and WORD blocks of a
// single-page document.
func (e Engine) DetectDocumentText(ctx context.Context, in *docanalysis.DetectDocumentTextInput) (*docanalysis.DetectDocumentTextOutput, error) {
	ctx, span := e.span(ctx, "DetectDocumentText")
	defer span.End()
	if err := e.throttle(); err != nil {
		return nil, err
	}
	if err := e.checkInline(in.Document); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	doc, err := e.loadSinglePage(ctx, in.Document)
	if err != nil {
		return nil, err
	}
	return &docanalysis.DetectDocumentTextOutput{
		DocumentMetadata:               metadata(len(doc.Pages)),
		Blocks:                         analyzer.DetectText(doc),
		DetectDocumentTextModelVersion: e.modelVersion(),
	}, nil
}

// AnalyzeExpense reads invoice and receipt fields from a single-page
// document.
func (e Engine) AnalyzeExpense(ctx context.Context, in *docanalysis.AnalyzeExpenseInput) (*docanalysis.AnalyzeExpenseOutput, error) {
	ctx, span := e.span(ctx, "AnalyzeExpense")
	defer span.End()
	if err := e.throttle(); err != nil {
		return nil, err
	}
	if err := e.checkInline(in.Document); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	doc, err := e.loadSinglePage(ctx, in.Document)
	if err != nil {
		return nil, err
	}
	return &docanalysis.AnalyzeExpenseOutput{
		DocumentMetadata: metadata(len(doc.Pages)),
		ExpenseDocuments: analyzer.Expense(doc),
	}, nil
}

// AnalyzeID reads identity fields from the front and optional back page of
// an identity document. Each page yields one IdentityDocument.
func (e Engine) AnalyzeID(ctx context.Context, in *docanalysis.AnalyzeIDInput) (*docanalysis.AnalyzeIDOutput, error) {
	ctx, span := e.span(ctx, "AnalyzeID")
	defer span.End()
	if err := e.throttle(); err != nil {
		return nil, err
	}
	for i := range in.DocumentPages {
		if err := e.checkInline(&in.DocumentPages[i]); err != nil {
			return nil, err
		}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	out := &docanalysis.AnalyzeIDOutput{
		DocumentMetadata:      metadata(len(in.DocumentPages)),
		AnalyzeIDModelVersion: e.modelVersion(),
	}
	for i := range in.DocumentPages {
		doc, err := e.loadSinglePage(ctx, &in.DocumentPages[i])
		if err != nil {
			return nil, err
		}
		out.IdentityDocuments = append(out.IdentityDocuments, analyzer.Identity(doc, int32(i+1)))
	}
	return out, nil
}

type conditionResult struct {
	ConditionType       string             `json:"ConditionType"`
	ConditionParameters map[string]float32 `json:"ConditionParameters"`
	LowestConfidence    *float32           `json:"LowestConfidence,omitempty"`
	EvaluationResult    bool               `json:"EvaluationResult"`
}

// activateHumanLoop starts a review loop when a form value falls under the
// confidence threshold or content classifiers are declared.
func (e Engine) activateHumanLoop(ctx context.Context, actorID string, cfg *types.HumanLoopConfig, blocks []types.Block) (*types.HumanLoopActivationOutput, error) {
	threshold := e.Config.HumanLoop.ConfidenceThreshold
	cond := conditionResult{
		ConditionType:       "ImportantFormKeyConfidenceCheck",
		ConditionParameters: map[string]float32{"ConfidenceLessThan": threshold},
	}
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeKeyValueSet || !slices.Contains(b.EntityTypes, types.EntityTypeValue) {
			continue
		}
		if c := b.GetConfidence(); cond.LowestConfidence == nil || c < *cond.LowestConfidence {
			cond.LowestConfidence = ptr(c)
		}
	}
	cond.EvaluationResult = cond.LowestConfidence != nil && *cond.LowestConfidence < threshold
	results, err := json.Marshal(map[string]any{"Conditions": []conditionResult{cond}})
	if err != nil {
		return nil, fmt.Errorf("marshal condition results: %w", err)
	}
	out := &types.HumanLoopActivationOutput{HumanLoopActivationConditionsEvaluationResults: ptr(string(results))}
	var reasons []string
	if cond.EvaluationResult {
		reasons = append(reasons, ReasonConditionsEvaluation)
	}
	if cfg.DataAttributes != nil && len(cfg.DataAttributes.ContentClassifiers) > 0 {
		reasons = append(reasons, ReasonContentClassifiers)
	}
	if len(reasons) == 0 {
		return out, nil
	}

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	active, err := e.Repo.CountActiveHumanLoops(ctx, tx)
	if err != nil {
		return nil, storageError(err)
	}
	if active >= e.Config.HumanLoop.MaxActiveLoops {
		return nil, apiError(errHumanLoopQuota, "%d human loops are already active", active)
	}
	loop := domain.HumanLoop{
		ARN:               e.arn("human-loop/" + cfg.GetHumanLoopName()),
		Name:              cfg.GetHumanLoopName(),
		FlowDefinitionARN: cfg.GetFlowDefinitionArn(),
		Status:            "InProgress",
		Reasons:           reasons,
		CreatedAt:         e.stamp(),
	}
	if err := e.Repo.InsertHumanLoop(ctx, tx, loop); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, apiError(errConflict, "human loop %s already exists", loop.Name)
		}
		return nil, storageError(err)
	}
	if err := e.Events.Append(ctx, tx, events.TypeHumanLoopStarted, "human_loop", loop.ARN, actorID, events.EventPayload{
		"HumanLoopArn":      loop.ARN,
		"FlowDefinitionArn": loop.FlowDefinitionARN,
		"Reasons":           reasons,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	out.HumanLoopArn = ptr(loop.ARN)
	out.HumanLoopActivationReasons = reasons
	return out, nil
}
