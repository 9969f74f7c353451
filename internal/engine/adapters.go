package engine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"docanalysis/internal/domain"
	"docanalysis/internal/events"
	"docanalysis/internal/repo"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

const maxTagsPerResource = 200

// Tags are stored under the resource key, which survives adapter renames.
func adapterKey(id string) string { return "adapter/" + id }

func versionKey(id, version string) string { return adapterKey(id) + "/version/" + version }

// arn qualifies resource with the partition, service, region and account
// of this deployment.
func (e Engine) arn(resource string) string {
	return fmt.Sprintf("arn:aws:docanalysis:%s:%s:%s", e.Config.Service.Region, e.Config.Service.Account, resource)
}

// AdapterARN returns the resource ARN of an adapter.
func (e Engine) AdapterARN(a domain.Adapter) string {
	return e.arn("adapter/" + a.Name + "/" + a.ID)
}

// AdapterVersionARN returns the resource ARN of an adapter version.
func (e Engine) AdapterVersionARN(a domain.Adapter, version string) string {
	return e.AdapterARN(a) + "/version/" + version
}

// resourceKey resolves a resource ARN to the key its tags are stored
// under. The resource must exist.
func (e Engine) resourceKey(ctx context.Context, arn string) (string, error) {
	rest, ok := strings.CutPrefix(arn, e.arn(""))
	if !ok {
		return "", apiError(errValidation, "%s is not a resource of this service", arn)
	}
	parts := strings.Split(rest, "/")
	isVersion := len(parts) == 5 && parts[3] == "version"
	if parts[0] != "adapter" || (len(parts) != 3 && !isVersion) {
		return "", apiError(errValidation, "%s is not an adapter or adapter version ARN", arn)
	}
	a, err := e.Repo.GetAdapter(ctx, nil, parts[2])
	if err != nil || a.Name != parts[1] {
		if err == nil {
			err = repo.ErrNotFound
		}
		return "", notFound("resource", arn, err)
	}
	if !isVersion {
		return adapterKey(a.ID), nil
	}
	if _, err := e.Repo.GetAdapterVersion(ctx, nil, a.ID, parts[4]); err != nil {
		return "", notFound("resource", arn, err)
	}
	return versionKey(a.ID, parts[4]), nil
}

func featureStrings(features []types.FeatureType) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = string(f)
	}
	return out
}

func featureTypes(features []string) []types.FeatureType {
	out := make([]types.FeatureType, len(features))
	for i, f := range features {
		out[i] = types.FeatureType(f)
	}
	return out
}

func checkAutoUpdate(v types.AutoUpdate) error {
	if v != "" && !slices.Contains(v.Values(), v) {
		return apiError(errInvalidParameter, "unknown AutoUpdate value %s", v)
	}
	return nil
}

// CreateAdapter registers a custom adapter. Adapters customize query
// answers, so QUERIES must be among the features.
func (e Engine) CreateAdapter(ctx context.Context, actorID string, in *docanalysis.CreateAdapterInput) (*docanalysis.CreateAdapterOutput, error) {
	ctx, span := e.span(ctx, "CreateAdapter")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	for _, f := range in.FeatureTypes {
		if !slices.Contains(f.Values(), f) {
			return nil, apiError(errInvalidParameter, "unknown feature type %s", f)
		}
	}
	if !slices.Contains(in.FeatureTypes, types.FeatureTypeQueries) {
		return nil, apiError(errInvalidParameter, "adapters require the QUERIES feature")
	}
	if err := checkAutoUpdate(in.AutoUpdate); err != nil {
		return nil, err
	}
	autoUpdate := in.AutoUpdate
	if autoUpdate == "" {
		autoUpdate = types.AutoUpdateDisabled
	}

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if in.ClientRequestToken != nil {
		existing, err := e.Repo.GetAdapterByToken(ctx, tx, *in.ClientRequestToken)
		switch {
		case err == nil:
			if existing.Name != in.GetAdapterName() || !slices.Equal(existing.FeatureTypes, featureStrings(in.FeatureTypes)) {
				return nil, apiError(errIdempotentMismatch, "ClientRequestToken %s was used with different parameters", *in.ClientRequestToken)
			}
			return &docanalysis.CreateAdapterOutput{AdapterId: ptr(existing.ID)}, nil
		case !errors.Is(err, repo.ErrNotFound):
			return nil, storageError(err)
		}
	}
	n, err := e.Repo.CountAdapters(ctx, tx)
	if err != nil {
		return nil, storageError(err)
	}
	if n >= e.Config.Adapters.MaxAdapters {
		return nil, apiError(errServiceQuota, "the account already has %d adapters", n)
	}
	a := domain.Adapter{
		ID:                 strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Name:               in.GetAdapterName(),
		Description:        in.GetDescription(),
		AutoUpdate:         string(autoUpdate),
		FeatureTypes:       featureStrings(in.FeatureTypes),
		ClientRequestToken: deref(in.ClientRequestToken),
		CreatedAt:          e.stamp(),
	}
	if err := e.Repo.InsertAdapter(ctx, tx, a); err != nil {
		return nil, conflict(err, "adapter %s already exists", a.Name)
	}
	if err := e.Repo.PutTags(ctx, tx, adapterKey(a.ID), in.Tags); err != nil {
		return nil, storageError(err)
	}
	if err := e.Events.Append(ctx, tx, events.TypeAdapterCreated, "adapter", a.ID, actorID, events.EventPayload{
		"AdapterName":  a.Name,
		"FeatureTypes": a.FeatureTypes,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.CreateAdapterOutput{AdapterId: ptr(a.ID)}, nil
}

func (e Engine) GetAdapter(ctx context.Context, in *docanalysis.GetAdapterInput) (*docanalysis.GetAdapterOutput, error) {
	ctx, span := e.span(ctx, "GetAdapter")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, err := e.Repo.GetAdapter(ctx, nil, in.GetAdapterId())
	if err != nil {
		return nil, notFound("adapter", in.GetAdapterId(), err)
	}
	tags, err := e.Repo.Tags(ctx, nil, adapterKey(a.ID))
	if err != nil {
		return nil, storageError(err)
	}
	out := &docanalysis.GetAdapterOutput{
		AdapterId:    ptr(a.ID),
		AdapterName:  ptr(a.Name),
		CreationTime: parseStamp(a.CreatedAt),
		FeatureTypes: featureTypes(a.FeatureTypes),
		AutoUpdate:   types.AutoUpdate(a.AutoUpdate),
		Tags:         tags,
	}
	if a.Description != "" {
		out.Description = ptr(a.Description)
	}
	return out, nil
}

// UpdateAdapter changes the name, description or AutoUpdate of an adapter.
func (e Engine) UpdateAdapter(ctx context.Context, in *docanalysis.UpdateAdapterInput) (*docanalysis.UpdateAdapterOutput, error) {
	ctx, span := e.span(ctx, "UpdateAdapter")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := checkAutoUpdate(in.AutoUpdate); err != nil {
		return nil, err
	}
	var autoUpdate *string
	if in.AutoUpdate != "" {
		autoUpdate = ptr(string(in.AutoUpdate))
	}
	id := in.GetAdapterId()

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := e.Repo.UpdateAdapter(ctx, tx, id, in.AdapterName, in.Description, autoUpdate); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, apiError(errConflict, "adapter %s already exists", in.GetAdapterName())
		}
		return nil, notFound("adapter", id, err)
	}
	a, err := e.Repo.GetAdapter(ctx, tx, id)
	if err != nil {
		return nil, notFound("adapter", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	out := &docanalysis.UpdateAdapterOutput{
		AdapterId:    ptr(a.ID),
		AdapterName:  ptr(a.Name),
		CreationTime: parseStamp(a.CreatedAt),
		FeatureTypes: featureTypes(a.FeatureTypes),
		AutoUpdate:   types.AutoUpdate(a.AutoUpdate),
	}
	if a.Description != "" {
		out.Description = ptr(a.Description)
	}
	return out, nil
}

// DeleteAdapter removes an adapter with its versions and tags.
func (e Engine) DeleteAdapter(ctx context.Context, actorID string, in *docanalysis.DeleteAdapterInput) (*docanalysis.DeleteAdapterOutput, error) {
	ctx, span := e.span(ctx, "DeleteAdapter")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id := in.GetAdapterId()
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := e.Repo.DeleteAdapter(ctx, tx, id); err != nil {
		return nil, notFound("adapter", id, err)
	}
	if err := e.Repo.DropTagsUnder(ctx, tx, adapterKey(id)); err != nil {
		return nil, storageError(err)
	}
	if err := e.Events.Append(ctx, tx, events.TypeAdapterDeleted, "adapter", id, actorID, nil); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.DeleteAdapterOutput{}, nil
}

// ListAdapters pages adapters by creation time.
func (e Engine) ListAdapters(ctx context.Context, in *docanalysis.ListAdaptersInput) (*docanalysis.ListAdaptersOutput, error) {
	ctx, span := e.span(ctx, "ListAdapters")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	limit := e.pageSize(in.MaxResults)
	f := repo.AdapterFilter{Limit: limit + 1}
	if in.AfterCreationTime != nil {
		f.After = domain.Stamp(*in.AfterCreationTime)
	}
	if in.BeforeCreationTime != nil {
		f.Before = domain.Stamp(*in.BeforeCreationTime)
	}
	if in.NextToken != nil {
		at, id, err := decodeListToken(*in.NextToken)
		if err != nil {
			return nil, err
		}
		f.CursorAt, f.CursorID = at, id
	}
	adapters, err := e.Repo.ListAdapters(ctx, f)
	if err != nil {
		return nil, storageError(err)
	}
	out := &docanalysis.ListAdaptersOutput{Adapters: []types.AdapterOverview{}}
	if len(adapters) > limit {
		adapters = adapters[:limit]
		last := adapters[limit-1]
		out.NextToken = encodeListToken(last.CreatedAt, last.ID)
	}
	for _, a := range adapters {
		out.Adapters = append(out.Adapters, types.AdapterOverview{
			AdapterId:    ptr(a.ID),
			AdapterName:  ptr(a.Name),
			CreationTime: parseStamp(a.CreatedAt),
			FeatureTypes: featureTypes(a.FeatureTypes),
		})
	}
	return out, nil
}

// List NextToken values are base64 of "<created_at>\n<key>".
func encodeListToken(at, key string) *string {
	return ptr(base64.RawURLEncoding.EncodeToString([]byte(at + "\n" + key)))
}

func decodeListToken(token string) (string, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", apiError(errValidation, "malformed NextToken")
	}
	at, key, ok := strings.Cut(string(raw), "\n")
	if !ok {
		return "", "", apiError(errValidation, "malformed NextToken")
	}
	if _, err := domain.ParseStamp(at); err != nil {
		return "", "", apiError(errValidation, "malformed NextToken")
	}
	return at, key, nil
}

// evaluationMetrics derives stable scores from the manifest content: the
// same manifest always trains to the same metrics.
func evaluationMetrics(manifest []byte, features []string) []types.AdapterVersionEvaluationMetric {
	round := func(v float64) *float32 {
		return ptr(float32(math.Round(math.Min(v, 1)*10000) / 10000))
	}
	metric := func(f1 float64) *types.EvaluationMetric {
		return &types.EvaluationMetric{F1Score: round(f1), Precision: round(f1 + 0.02), Recall: round(f1 - 0.02)}
	}
	out := make([]types.AdapterVersionEvaluationMetric, 0, len(features))
	for _, f := range features {
		d := xxhash.New()
		_, _ = d.Write(manifest)
		_, _ = d.WriteString(f)
		h := d.Sum64()
		baseline := 0.70 + float64(h%1500)/10000
		gain := 0.05 + float64((h>>16)%700)/10000
		out = append(out, types.AdapterVersionEvaluationMetric{
			FeatureType:    types.FeatureType(f),
			Baseline:       metric(baseline),
			AdapterVersion: metric(baseline + gain),
		})
	}
	return out
}

// CreateAdapterVersion trains a new version from a manifest. Training is
// immediate: the version is ACTIVE on return and its evaluation is written
// under {prefix}/{adapterId}/{version}/.
func (e Engine) CreateAdapterVersion(ctx context.Context, actorID string, in *docanalysis.CreateAdapterVersionInput) (*docanalysis.CreateAdapterVersionOutput, error) {
	ctx, span := e.span(ctx, "CreateAdapterVersion")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := checkKMSKey(in.KMSKeyId); err != nil {
		return nil, err
	}
	id := in.GetAdapterId()
	a, err := e.Repo.GetAdapter(ctx, nil, id)
	if err != nil {
		return nil, notFound("adapter", id, err)
	}
	if in.DatasetConfig.ManifestS3Object == nil {
		return nil, apiError(errInvalidParameter, "DatasetConfig.ManifestS3Object is required")
	}
	manifest, err := e.fetch(ctx, in.DatasetConfig.ManifestS3Object, e.Config.Limits.AsyncMaxBytes)
	if err != nil {
		return nil, err
	}
	dataset, err := json.Marshal(in.DatasetConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal dataset config: %w", err)
	}
	metrics, err := json.Marshal(evaluationMetrics(manifest, a.FeatureTypes))
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}
	bucket, prefix := in.OutputConfig.GetS3Bucket(), in.OutputConfig.GetS3Prefix()

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if in.ClientRequestToken != nil {
		existing, err := e.Repo.GetAdapterVersionByToken(ctx, tx, id, *in.ClientRequestToken)
		switch {
		case err == nil:
			if existing.DatasetJSON != string(dataset) || existing.OutputBucket != bucket || existing.OutputPrefix != prefix {
				return nil, apiError(errIdempotentMismatch, "ClientRequestToken %s was used with different parameters", *in.ClientRequestToken)
			}
			return &docanalysis.CreateAdapterVersionOutput{AdapterId: ptr(id), AdapterVersion: ptr(existing.Version)}, nil
		case !errors.Is(err, repo.ErrNotFound):
			return nil, storageError(err)
		}
	}
	n, err := e.Repo.CountAdapterVersions(ctx, tx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if n >= e.Config.Adapters.MaxVersionsPerAdapter {
		return nil, apiError(errServiceQuota, "adapter %s already has %d versions", id, n)
	}
	version := ""
	for i := n + 1; version == ""; i++ {
		_, err := e.Repo.GetAdapterVersion(ctx, tx, id, strconv.Itoa(i))
		switch {
		case errors.Is(err, repo.ErrNotFound):
			version = strconv.Itoa(i)
		case err != nil:
			return nil, storageError(err)
		}
	}
	v := domain.AdapterVersion{
		AdapterID:          id,
		Version:            version,
		Status:             string(types.AdapterVersionStatusActive),
		StatusMessage:      "training completed",
		FeatureTypes:       a.FeatureTypes,
		DatasetJSON:        string(dataset),
		OutputBucket:       bucket,
		OutputPrefix:       prefix,
		KMSKeyID:           deref(in.KMSKeyId),
		MetricsJSON:        string(metrics),
		ClientRequestToken: deref(in.ClientRequestToken),
		CreatedAt:          e.stamp(),
	}
	if err := e.Repo.InsertAdapterVersion(ctx, tx, v); err != nil {
		return nil, conflict(err, "adapter version %s/%s already exists", id, version)
	}
	if err := e.Repo.PutTags(ctx, tx, versionKey(id, version), in.Tags); err != nil {
		return nil, storageError(err)
	}
	if _, err := e.Store.Put(ctx, bucket, path.Join(prefix, id, version, "evaluation.json"), metrics, "application/json"); err != nil {
		return nil, objectError(err, bucket, path.Join(prefix, id, version))
	}
	if err := e.Events.Append(ctx, tx, events.TypeVersionCreated, "adapter_version", versionKey(id, version), actorID, events.EventPayload{
		"AdapterId":      id,
		"AdapterVersion": version,
		"Status":         v.Status,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.CreateAdapterVersionOutput{AdapterId: ptr(id), AdapterVersion: ptr(version)}, nil
}

func (e Engine) GetAdapterVersion(ctx context.Context, in *docanalysis.GetAdapterVersionInput) (*docanalysis.GetAdapterVersionOutput, error) {
	ctx, span := e.span(ctx, "GetAdapterVersion")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, version := in.GetAdapterId(), in.GetAdapterVersion()
	v, err := e.Repo.GetAdapterVersion(ctx, nil, id, version)
	if err != nil {
		return nil, notFound("adapter version", id+"/"+version, err)
	}
	tags, err := e.Repo.Tags(ctx, nil, versionKey(id, version))
	if err != nil {
		return nil, storageError(err)
	}
	out := &docanalysis.GetAdapterVersionOutput{
		AdapterId:      ptr(v.AdapterID),
		AdapterVersion: ptr(v.Version),
		CreationTime:   parseStamp(v.CreatedAt),
		FeatureTypes:   featureTypes(v.FeatureTypes),
		Status:         types.AdapterVersionStatus(v.Status),
		OutputConfig:   &types.OutputConfig{S3Bucket: ptr(v.OutputBucket)},
		Tags:           tags,
	}
	if v.StatusMessage != "" {
		out.StatusMessage = ptr(v.StatusMessage)
	}
	if v.OutputPrefix != "" {
		out.OutputConfig.S3Prefix = ptr(v.OutputPrefix)
	}
	if v.KMSKeyID != "" {
		out.KMSKeyId = ptr(v.KMSKeyID)
	}
	out.DatasetConfig = &types.AdapterVersionDatasetConfig{}
	if err := json.Unmarshal([]byte(v.DatasetJSON), out.DatasetConfig); err != nil {
		return nil, fmt.Errorf("decode dataset config: %w", err)
	}
	if v.MetricsJSON != "" {
		if err := json.Unmarshal([]byte(v.MetricsJSON), &out.EvaluationMetrics); err != nil {
			return nil, fmt.Errorf("decode metrics: %w", err)
		}
	}
	return out, nil
}

func (e Engine) DeleteAdapterVersion(ctx context.Context, actorID string, in *docanalysis.DeleteAdapterVersionInput) (*docanalysis.DeleteAdapterVersionOutput, error) {
	ctx, span := e.span(ctx, "DeleteAdapterVersion")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, version := in.GetAdapterId(), in.GetAdapterVersion()
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := e.Repo.DeleteAdapterVersion(ctx, tx, id, version); err != nil {
		return nil, notFound("adapter version", id+"/"+version, err)
	}
	if err := e.Repo.DropTagsUnder(ctx, tx, versionKey(id, version)); err != nil {
		return nil, storageError(err)
	}
	if err := e.Events.Append(ctx, tx, events.TypeVersionDeleted, "adapter_version", versionKey(id, version), actorID, nil); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.DeleteAdapterVersionOutput{}, nil
}

// ListAdapterVersions pages versions by creation time, optionally for one
// adapter.
func (e Engine) ListAdapterVersions(ctx context.Context, in *docanalysis.ListAdapterVersionsInput) (*docanalysis.ListAdapterVersionsOutput, error) {
	ctx, span := e.span(ctx, "ListAdapterVersions")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	limit := e.pageSize(in.MaxResults)
	f := repo.VersionFilter{AdapterID: in.GetAdapterId(), Limit: limit + 1}
	if f.AdapterID != "" {
		if _, err := e.Repo.GetAdapter(ctx, nil, f.AdapterID); err != nil {
			return nil, notFound("adapter", f.AdapterID, err)
		}
	}
	if in.AfterCreationTime != nil {
		f.After = domain.Stamp(*in.AfterCreationTime)
	}
	if in.BeforeCreationTime != nil {
		f.Before = domain.Stamp(*in.BeforeCreationTime)
	}
	if in.NextToken != nil {
		at, key, err := decodeListToken(*in.NextToken)
		if err != nil {
			return nil, err
		}
		f.CursorAt, f.CursorKey = at, key
	}
	versions, err := e.Repo.ListAdapterVersions(ctx, f)
	if err != nil {
		return nil, storageError(err)
	}
	out := &docanalysis.ListAdapterVersionsOutput{AdapterVersions: []types.AdapterVersionOverview{}}
	if len(versions) > limit {
		versions = versions[:limit]
		last := versions[limit-1]
		out.NextToken = encodeListToken(last.CreatedAt, last.AdapterID+"/"+last.Version)
	}
	for _, v := range versions {
		o := types.AdapterVersionOverview{
			AdapterId:      ptr(v.AdapterID),
			AdapterVersion: ptr(v.Version),
			CreationTime:   parseStamp(v.CreatedAt),
			FeatureTypes:   featureTypes(v.FeatureTypes),
			Status:         types.AdapterVersionStatus(v.Status),
		}
		if v.StatusMessage != "" {
			o.StatusMessage = ptr(v.StatusMessage)
		}
		out.AdapterVersions = append(out.AdapterVersions, o)
	}
	return out, nil
}

func (e Engine) ListTagsForResource(ctx context.Context, in *docanalysis.ListTagsForResourceInput) (*docanalysis.ListTagsForResourceOutput, error) {
	ctx, span := e.span(ctx, "ListTagsForResource")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	key, err := e.resourceKey(ctx, in.GetResourceARN())
	if err != nil {
		return nil, err
	}
	tags, err := e.Repo.Tags(ctx, nil, key)
	if err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.ListTagsForResourceOutput{Tags: tags}, nil
}

// TagResource adds or overwrites tags. A resource holds at most 200 tags.
func (e Engine) TagResource(ctx context.Context, in *docanalysis.TagResourceInput) (*docanalysis.TagResourceOutput, error) {
	ctx, span := e.span(ctx, "TagResource")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	key, err := e.resourceKey(ctx, in.GetResourceARN())
	if err != nil {
		return nil, err
	}
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := e.Repo.PutTags(ctx, tx, key, in.Tags); err != nil {
		return nil, storageError(err)
	}
	tags, err := e.Repo.Tags(ctx, tx, key)
	if err != nil {
		return nil, storageError(err)
	}
	if len(tags) > maxTagsPerResource {
		return nil, apiError(errServiceQuota, "resource would carry %d tags, the limit is %d", len(tags), maxTagsPerResource)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.TagResourceOutput{}, nil
}

// UntagResource removes tag keys; unknown keys are ignored.
func (e Engine) UntagResource(ctx context.Context, in *docanalysis.UntagResourceInput) (*docanalysis.UntagResourceOutput, error) {
	ctx, span := e.span(ctx, "UntagResource")
	defer span.End()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	key, err := e.resourceKey(ctx, in.GetResourceARN())
	if err != nil {
		return nil, err
	}
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := e.Repo.RemoveTags(ctx, tx, key, in.TagKeys); err != nil {
		return nil, storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return &docanalysis.UntagResourceOutput{}, nil
}
