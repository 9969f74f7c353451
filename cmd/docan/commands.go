package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docanalysis/internal/engine"
	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/blocks"
	"docanalysis/sdk/go/types"
)

// documentFlags selects the input document of a command: a local file sent
// inline or a stored object.
type documentFlags struct {
	file    string
	object  string
	version string
}

func (f *documentFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "local file sent as inline bytes")
	cmd.Flags().StringVar(&f.object, "s3", "", "stored object as bucket/name")
	cmd.Flags().StringVar(&f.version, "version", "", "object version")
}

func (f *documentFlags) s3Object() (*types.S3Object, error) {
	bucket, name, ok := strings.Cut(f.object, "/")
	if !ok || bucket == "" || name == "" {
		return nil, fmt.Errorf("--s3 must be bucket/name, got %q", f.object)
	}
	obj := &types.S3Object{Bucket: &bucket, Name: &name}
	if f.version != "" {
		obj.Version = &f.version
	}
	return obj, nil
}

func (f *documentFlags) document() (*types.Document, error) {
	switch {
	case f.file != "" && f.object != "":
		return nil, fmt.Errorf("use either --file or --s3")
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, err
		}
		return &types.Document{Bytes: data}, nil
	case f.object != "":
		obj, err := f.s3Object()
		if err != nil {
			return nil, err
		}
		return &types.Document{S3Object: obj}, nil
	}
	return nil, fmt.Errorf("--file or --s3 required")
}

func (f *documentFlags) location() (*types.DocumentLocation, error) {
	if f.file != "" {
		return nil, fmt.Errorf("jobs read stored objects; upload the file with 'docan object put' and pass --s3")
	}
	obj, err := f.s3Object()
	if err != nil {
		return nil, err
	}
	return &types.DocumentLocation{S3Object: obj}, nil
}

func featureTypes(names []string) []types.FeatureType {
	out := make([]types.FeatureType, 0, len(names))
	for _, n := range names {
		out = append(out, types.FeatureType(strings.ToUpper(strings.TrimSpace(n))))
	}
	return out
}

// queriesConfig parses "text=alias" pairs. The alias is optional.
func queriesConfig(raw []string) *types.QueriesConfig {
	if len(raw) == 0 {
		return nil
	}
	cfg := &types.QueriesConfig{}
	for _, q := range raw {
		text, alias, _ := strings.Cut(q, "=")
		query := types.Query{Text: ptr(strings.TrimSpace(text))}
		if alias = strings.TrimSpace(alias); alias != "" {
			query.Alias = &alias
		}
		cfg.Queries = append(cfg.Queries, query)
	}
	return cfg
}

// adaptersConfig parses "id:version[:pages]" where pages is a comma list.
func adaptersConfig(raw []string) (*types.AdaptersConfig, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	cfg := &types.AdaptersConfig{}
	for _, a := range raw {
		parts := strings.SplitN(a, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("--adapter must be id:version[:pages], got %q", a)
		}
		adapter := types.Adapter{AdapterId: ptr(parts[0]), Version: ptr(parts[1])}
		if len(parts) == 3 {
			adapter.Pages = strings.Split(parts[2], ",")
		}
		cfg.Adapters = append(cfg.Adapters, adapter)
	}
	return cfg, nil
}

func outputConfig(raw string) *types.OutputConfig {
	if raw == "" {
		return nil
	}
	bucket, prefix, _ := strings.Cut(raw, "/")
	out := &types.OutputConfig{S3Bucket: &bucket}
	if prefix != "" {
		out.S3Prefix = &prefix
	}
	return out
}

func detectCmd() *cobra.Command {
	var doc documentFlags
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect lines and words in a single-page document",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := doc.document()
			if err != nil {
				return err
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.DetectDocumentText(ctx, &docanalysis.DetectDocumentTextInput{Document: d})
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				printLines(blocks.New(out.Blocks))
				return nil
			})
		},
	}
	doc.bind(cmd)
	return cmd
}

func analyzeCmd() *cobra.Command {
	var doc documentFlags
	var features, queries, adapters []string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze forms, tables, queries, signatures and layout of a single-page document",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := doc.document()
			if err != nil {
				return err
			}
			in := &docanalysis.AnalyzeDocumentInput{
				Document:      d,
				FeatureTypes:  featureTypes(features),
				QueriesConfig: queriesConfig(queries),
			}
			if in.AdaptersConfig, err = adaptersConfig(adapters); err != nil {
				return err
			}
			if in.QueriesConfig != nil && !hasFeature(in.FeatureTypes, types.FeatureTypeQueries) {
				in.FeatureTypes = append(in.FeatureTypes, types.FeatureTypeQueries)
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.AnalyzeDocument(ctx, viper.GetString("actor-id"), in)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				printAnalysis(blocks.New(out.Blocks))
				return nil
			})
		},
	}
	doc.bind(cmd)
	cmd.Flags().StringSliceVar(&features, "features", []string{"FORMS", "TABLES"}, "feature types (FORMS, TABLES, QUERIES, SIGNATURES, LAYOUT)")
	cmd.Flags().StringArrayVar(&queries, "query", nil, "query as text=alias (repeatable)")
	cmd.Flags().StringArrayVar(&adapters, "adapter", nil, "adapter as id:version[:pages] (repeatable)")
	return cmd
}

func expenseCmd() *cobra.Command {
	var doc documentFlags
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Extract invoice and receipt fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := doc.document()
			if err != nil {
				return err
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.AnalyzeExpense(ctx, &docanalysis.AnalyzeExpenseInput{Document: d})
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(table.Row{"Expense", "Type", "Label", "Value"})
				for _, doc := range out.ExpenseDocuments {
					for _, f := range doc.SummaryFields {
						tw.AppendRow(table.Row{doc.GetExpenseIndex(), f.Type.GetText(), f.LabelDetection.GetText(), f.ValueDetection.GetText()})
					}
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	doc.bind(cmd)
	return cmd
}

func idCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Extract fields of identity documents (front and back pages)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				return fmt.Errorf("--file required")
			}
			in := &docanalysis.AnalyzeIDInput{}
			for _, f := range files {
				data, err := os.ReadFile(f)
				if err != nil {
					return err
				}
				in.DocumentPages = append(in.DocumentPages, types.Document{Bytes: data})
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.AnalyzeID(ctx, in)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(table.Row{"Page", "Field", "Value"})
				for _, doc := range out.IdentityDocuments {
					for _, f := range doc.IdentityDocumentFields {
						tw.AppendRow(table.Row{doc.GetDocumentIndex(), f.Type.GetText(), f.ValueDetection.GetText()})
					}
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&files, "file", nil, "page image or text file (at most two)")
	return cmd
}

func jobCmd() *cobra.Command {
	job := &cobra.Command{
		Use:   "job",
		Short: "Start and inspect asynchronous jobs",
		Long:  "Job kinds: analysis, text, expense and lending. Results are paged; pass --next-token to continue.",
	}
	job.AddCommand(jobStartCmd())
	job.AddCommand(jobGetCmd())
	job.AddCommand(jobRunCmd())
	return job
}

func jobStartCmd() *cobra.Command {
	var doc documentFlags
	var kind, token, tag, topic, role, output, kmsKey string
	var features, queries, adapters []string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Queue a job for a stored document",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := doc.location()
			if err != nil {
				return err
			}
			var channel *types.NotificationChannel
			if topic != "" {
				channel = &types.NotificationChannel{SNSTopicArn: &topic, RoleArn: &role}
			}
			out := outputConfig(output)
			actor := viper.GetString("actor-id")
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				var jobID *string
				switch kind {
				case "analysis":
					in := &docanalysis.StartDocumentAnalysisInput{
						DocumentLocation: loc, FeatureTypes: featureTypes(features), QueriesConfig: queriesConfig(queries),
						ClientRequestToken: optional(token), JobTag: optional(tag), NotificationChannel: channel,
						OutputConfig: out, KMSKeyId: optional(kmsKey),
					}
					if in.AdaptersConfig, err = adaptersConfig(adapters); err != nil {
						return err
					}
					res, err := e.StartDocumentAnalysis(ctx, actor, in)
					if err != nil {
						return err
					}
					jobID = res.JobId
				case "text":
					res, err := e.StartDocumentTextDetection(ctx, actor, &docanalysis.StartDocumentTextDetectionInput{
						DocumentLocation: loc, ClientRequestToken: optional(token), JobTag: optional(tag),
						NotificationChannel: channel, OutputConfig: out, KMSKeyId: optional(kmsKey),
					})
					if err != nil {
						return err
					}
					jobID = res.JobId
				case "expense":
					res, err := e.StartExpenseAnalysis(ctx, actor, &docanalysis.StartExpenseAnalysisInput{
						DocumentLocation: loc, ClientRequestToken: optional(token), JobTag: optional(tag),
						NotificationChannel: channel, OutputConfig: out, KMSKeyId: optional(kmsKey),
					})
					if err != nil {
						return err
					}
					jobID = res.JobId
				case "lending":
					res, err := e.StartLendingAnalysis(ctx, actor, &docanalysis.StartLendingAnalysisInput{
						DocumentLocation: loc, ClientRequestToken: optional(token), JobTag: optional(tag),
						NotificationChannel: channel, OutputConfig: out, KMSKeyId: optional(kmsKey),
					})
					if err != nil {
						return err
					}
					jobID = res.JobId
				default:
					return fmt.Errorf("unknown job kind %q (analysis, text, expense, lending)", kind)
				}
				if viper.GetBool("json") {
					return printJSON(map[string]string{"JobId": *jobID})
				}
				fmt.Println(*jobID)
				return nil
			})
		},
	}
	doc.bind(cmd)
	cmd.Flags().StringVar(&kind, "kind", "text", "job kind (analysis, text, expense, lending)")
	cmd.Flags().StringSliceVar(&features, "features", []string{"FORMS", "TABLES"}, "feature types for analysis jobs")
	cmd.Flags().StringArrayVar(&queries, "query", nil, "query as text=alias for analysis jobs (repeatable)")
	cmd.Flags().StringArrayVar(&adapters, "adapter", nil, "adapter as id:version[:pages] for analysis jobs (repeatable)")
	cmd.Flags().StringVar(&token, "token", "", "client request token for idempotent retries")
	cmd.Flags().StringVar(&tag, "tag", "", "job tag echoed in the completion notification")
	cmd.Flags().StringVar(&topic, "topic", "", "notification topic ARN")
	cmd.Flags().StringVar(&role, "role-arn", "arn:aws:iam::000000000000:role/docanalysis", "role ARN sent with the topic")
	cmd.Flags().StringVar(&output, "output", "", "output location as bucket[/prefix]")
	cmd.Flags().StringVar(&kmsKey, "kms-key", "", "KMS key for the output")
	return cmd
}

func jobGetCmd() *cobra.Command {
	var maxResults int32
	var nextToken string
	var summary bool
	cmd := &cobra.Command{
		Use:   "get <kind> <job-id>",
		Short: "Get the status and a page of results of a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id := args[0], &args[1]
			var limit *int32
			if maxResults > 0 {
				limit = &maxResults
			}
			token := optional(nextToken)
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				var (
					out    any
					status types.JobStatus
					pages  int32
					next   *string
					err    error
				)
				switch {
				case kind == "analysis":
					var res *docanalysis.GetDocumentAnalysisOutput
					if res, err = e.GetDocumentAnalysis(ctx, &docanalysis.GetDocumentAnalysisInput{JobId: id, MaxResults: limit, NextToken: token}); err == nil {
						out, status, pages, next = res, res.JobStatus, res.DocumentMetadata.GetPages(), res.NextToken
					}
				case kind == "text":
					var res *docanalysis.GetDocumentTextDetectionOutput
					if res, err = e.GetDocumentTextDetection(ctx, &docanalysis.GetDocumentTextDetectionInput{JobId: id, MaxResults: limit, NextToken: token}); err == nil {
						out, status, pages, next = res, res.JobStatus, res.DocumentMetadata.GetPages(), res.NextToken
					}
				case kind == "expense":
					var res *docanalysis.GetExpenseAnalysisOutput
					if res, err = e.GetExpenseAnalysis(ctx, &docanalysis.GetExpenseAnalysisInput{JobId: id, MaxResults: limit, NextToken: token}); err == nil {
						out, status, pages, next = res, res.JobStatus, res.DocumentMetadata.GetPages(), res.NextToken
					}
				case kind == "lending" && summary:
					var res *docanalysis.GetLendingAnalysisSummaryOutput
					if res, err = e.GetLendingAnalysisSummary(ctx, &docanalysis.GetLendingAnalysisSummaryInput{JobId: id}); err == nil {
						out, status, pages = res, res.JobStatus, res.DocumentMetadata.GetPages()
					}
				case kind == "lending":
					var res *docanalysis.GetLendingAnalysisOutput
					if res, err = e.GetLendingAnalysis(ctx, &docanalysis.GetLendingAnalysisInput{JobId: id, MaxResults: limit, NextToken: token}); err == nil {
						out, status, pages, next = res, res.JobStatus, res.DocumentMetadata.GetPages(), res.NextToken
					}
				default:
					return fmt.Errorf("unknown job kind %q (analysis, text, expense, lending)", kind)
				}
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				fmt.Printf("Job %s: %s, %d page(s)\n", *id, status, pages)
				if next != nil {
					fmt.Printf("More results: --next-token %s\n", *next)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int32Var(&maxResults, "max-results", 0, "results per page")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "token of the next page")
	cmd.Flags().BoolVar(&summary, "summary", false, "lending jobs: show the summary instead of page results")
	return cmd
}

func jobRunCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process queued jobs once, without a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				start := time.Now()
				n, err := e.ProcessPending(ctx, limit)
				if err != nil {
					return err
				}
				fmt.Printf("processed %d job(s) in %s\n", n, time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum jobs to process")
	return cmd
}

func adapterCmd() *cobra.Command {
	ad := &cobra.Command{
		Use:   "adapter",
		Short: "Manage adapters and their versions",
	}
	ad.AddCommand(adapterCreateCmd())
	ad.AddCommand(adapterGetCmd())
	ad.AddCommand(adapterListCmd())
	ad.AddCommand(adapterUpdateCmd())
	ad.AddCommand(adapterDeleteCmd())
	ad.AddCommand(adapterVersionCmd())
	return ad
}

func adapterCreateCmd() *cobra.Command {
	var name, description, autoUpdate, token string
	var features []string
	var tags map[string]string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an adapter",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &docanalysis.CreateAdapterInput{
				AdapterName:        &name,
				Description:        optional(description),
				FeatureTypes:       featureTypes(features),
				AutoUpdate:         types.AutoUpdate(strings.ToUpper(autoUpdate)),
				ClientRequestToken: optional(token),
			}
			if len(tags) > 0 {
				in.Tags = tags
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.CreateAdapter(ctx, viper.GetString("actor-id"), in)
				if err != nil {
					return err
				}
				return printResult(out, *out.AdapterId)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "adapter name")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringSliceVar(&features, "features", []string{"QUERIES"}, "feature types")
	cmd.Flags().StringVar(&autoUpdate, "auto-update", "", "ENABLED or DISABLED")
	cmd.Flags().StringVar(&token, "token", "", "client request token")
	cmd.Flags().StringToStringVar(&tags, "tag", nil, "tags as key=value")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func adapterGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <adapter-id>",
		Short: "Show an adapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.GetAdapter(ctx, &docanalysis.GetAdapterInput{AdapterId: &args[0]})
				if err != nil {
					return err
				}
				return printJSON(out)
			})
		},
	}
}

func adapterListCmd() *cobra.Command {
	var maxResults int32
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List adapters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				var items []types.AdapterOverview
				p := docanalysis.NewListAdaptersPaginator(engineAdapters{e}, &docanalysis.ListAdaptersInput{MaxResults: &maxResults})
				for p.HasMorePages() {
					page, err := p.NextPage(ctx)
					if err != nil {
						return err
					}
					items = append(items, page.Adapters...)
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := newTable(table.Row{"ID", "Name", "Features", "Created"})
				for _, a := range items {
					tw.AppendRow(table.Row{a.GetAdapterId(), a.GetAdapterName(), joinFeatures(a.FeatureTypes), sinceTime(a.CreationTime)})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	cmd.Flags().Int32Var(&maxResults, "page-size", 50, "adapters fetched per request")
	return cmd
}

func adapterUpdateCmd() *cobra.Command {
	var name, description, autoUpdate string
	cmd := &cobra.Command{
		Use:   "update <adapter-id>",
		Short: "Rename an adapter or change its description or auto update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &docanalysis.UpdateAdapterInput{AdapterId: &args[0]}
			if cmd.Flags().Changed("name") {
				in.AdapterName = &name
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			if autoUpdate != "" {
				in.AutoUpdate = types.AutoUpdate(strings.ToUpper(autoUpdate))
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.UpdateAdapter(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(out)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&autoUpdate, "auto-update", "", "ENABLED or DISABLED")
	return cmd
}

func adapterDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <adapter-id>",
		Short: "Delete an adapter and all of its versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				if _, err := e.DeleteAdapter(ctx, viper.GetString("actor-id"), &docanalysis.DeleteAdapterInput{AdapterId: &args[0]}); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}

func adapterVersionCmd() *cobra.Command {
	v := &cobra.Command{
		Use:   "version",
		Short: "Manage adapter versions",
		Long:  "Creating a version trains the adapter on a manifest of annotated documents and writes evaluation metrics to the output location.",
	}
	v.AddCommand(versionCreateCmd())
	v.AddCommand(versionGetCmd())
	v.AddCommand(versionListCmd())
	v.AddCommand(versionDeleteCmd())
	return v
}

func versionCreateCmd() *cobra.Command {
	var manifest documentFlags
	var output, token, kmsKey string
	var tags map[string]string
	cmd := &cobra.Command{
		Use:   "create <adapter-id>",
		Short: "Train a new adapter version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := manifest.s3Object()
			if err != nil {
				return err
			}
			in := &docanalysis.CreateAdapterVersionInput{
				AdapterId:          &args[0],
				DatasetConfig:      &types.AdapterVersionDatasetConfig{ManifestS3Object: obj},
				OutputConfig:       outputConfig(output),
				ClientRequestToken: optional(token),
				KMSKeyId:           optional(kmsKey),
			}
			if len(tags) > 0 {
				in.Tags = tags
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.CreateAdapterVersion(ctx, viper.GetString("actor-id"), in)
				if err != nil {
					return err
				}
				return printResult(out, *out.AdapterVersion)
			})
		},
	}
	cmd.Flags().StringVar(&manifest.object, "manifest", "", "manifest object as bucket/name")
	cmd.Flags().StringVar(&output, "output", "", "output location as bucket[/prefix]")
	cmd.Flags().StringVar(&token, "token", "", "client request token")
	cmd.Flags().StringVar(&kmsKey, "kms-key", "", "KMS key for the output")
	cmd.Flags().StringToStringVar(&tags, "tag", nil, "tags as key=value")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func versionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <adapter-id> <version>",
		Short: "Show an adapter version with its evaluation metrics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.GetAdapterVersion(ctx, &docanalysis.GetAdapterVersionInput{AdapterId: &args[0], AdapterVersion: &args[1]})
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				fmt.Printf("%s version %s: %s\n", out.GetAdapterId(), out.GetAdapterVersion(), out.Status)
				tw := newTable(table.Row{"Feature", "Baseline F1", "Adapter F1"})
				for _, m := range out.EvaluationMetrics {
					tw.AppendRow(table.Row{m.FeatureType, m.Baseline.GetF1Score(), m.AdapterVersion.GetF1Score()})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
}

func versionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [adapter-id]",
		Short: "List adapter versions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &docanalysis.ListAdapterVersionsInput{}
			if len(args) == 1 {
				in.AdapterId = &args[0]
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				var items []types.AdapterVersionOverview
				p := docanalysis.NewListAdapterVersionsPaginator(engineAdapters{e}, in)
				for p.HasMorePages() {
					page, err := p.NextPage(ctx)
					if err != nil {
						return err
					}
					items = append(items, page.AdapterVersions...)
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := newTable(table.Row{"Adapter", "Version", "Status", "Features", "Created"})
				for _, v := range items {
					tw.AppendRow(table.Row{v.GetAdapterId(), v.GetAdapterVersion(), v.Status, joinFeatures(v.FeatureTypes), sinceTime(v.CreationTime)})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	return cmd
}

func versionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <adapter-id> <version>",
		Short: "Delete an adapter version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				in := &docanalysis.DeleteAdapterVersionInput{AdapterId: &args[0], AdapterVersion: &args[1]}
				if _, err := e.DeleteAdapterVersion(ctx, viper.GetString("actor-id"), in); err != nil {
					return err
				}
				fmt.Printf("deleted %s version %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func tagCmd() *cobra.Command {
	tg := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags of adapters and adapter versions",
	}
	tg.AddCommand(&cobra.Command{
		Use:   "list <arn>",
		Short: "List tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				out, err := e.ListTagsForResource(ctx, &docanalysis.ListTagsForResourceInput{ResourceARN: &args[0]})
				if err != nil {
					return err
				}
				return printJSON(out.Tags)
			})
		},
	})
	tg.AddCommand(&cobra.Command{
		Use:   "add <arn> <key=value>...",
		Short: "Add or overwrite tags",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := map[string]string{}
			for _, kv := range args[1:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("tag %q must be key=value", kv)
				}
				tags[k] = v
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				_, err := e.TagResource(ctx, &docanalysis.TagResourceInput{ResourceARN: &args[0], Tags: tags})
				return err
			})
		},
	})
	tg.AddCommand(&cobra.Command{
		Use:   "remove <arn> <key>...",
		Short: "Remove tags",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				_, err := e.UntagResource(ctx, &docanalysis.UntagResourceInput{ResourceARN: &args[0], TagKeys: args[1:]})
				return err
			})
		},
	})
	return tg
}

// engineAdapters lets the SDK paginators drive the engine directly.
type engineAdapters struct{ e engine.Engine }

func (a engineAdapters) ListAdapters(ctx context.Context, in *docanalysis.ListAdaptersInput) (*docanalysis.ListAdaptersOutput, error) {
	return a.e.ListAdapters(ctx, in)
}

func (a engineAdapters) ListAdapterVersions(ctx context.Context, in *docanalysis.ListAdapterVersionsInput) (*docanalysis.ListAdapterVersionsOutput, error) {
	return a.e.ListAdapterVersions(ctx, in)
}

func printLines(g *blocks.Graph) {
	for _, page := range g.Pages() {
		fmt.Printf("--- page %d ---\n", page.GetPage())
		for _, line := range g.Lines(page.GetPage()) {
			fmt.Println(line.GetText())
		}
	}
}

func printAnalysis(g *blocks.Graph) {
	if kvs := g.KeyValues(); len(kvs) > 0 {
		tw := newTable(table.Row{"Key", "Value"})
		for _, kv := range kvs {
			tw.AppendRow(table.Row{kv.KeyText, kv.Text})
		}
		fmt.Println(tw.Render())
	}
	for i, t := range g.Tables() {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tw.SetTitle(fmt.Sprintf("Table %d", i+1))
		for _, row := range t.Rows {
			r := make(table.Row, len(row))
			for j, cell := range row {
				r[j] = cell
			}
			tw.AppendRow(r)
		}
		fmt.Println(tw.Render())
	}
	if answers := g.QueryAnswers(); len(answers) > 0 {
		tw := newTable(table.Row{"Alias", "Query", "Answer"})
		for _, qa := range answers {
			var texts []string
			for _, b := range qa.Answers {
				texts = append(texts, g.Text(b))
			}
			q := qa.Query.Query
			tw.AppendRow(table.Row{q.GetAlias(), q.GetText(), strings.Join(texts, " | ")})
		}
		fmt.Println(tw.Render())
	}
}

// printResult prints the full output as JSON or just its identifier.
func printResult(out any, id string) error {
	if viper.GetBool("json") {
		return printJSON(out)
	}
	fmt.Println(id)
	return nil
}

func hasFeature(features []types.FeatureType, f types.FeatureType) bool {
	for _, have := range features {
		if have == f {
			return true
		}
	}
	return false
}

func joinFeatures(features []types.FeatureType) string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func sinceTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return humanize.Time(*t)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr[T any](v T) *T { return &v }
