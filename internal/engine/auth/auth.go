package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"docanalysis/internal/config"
	"docanalysis/internal/repo"
)

// Permissions checked by the API.
const (
	PermDocumentAnalyze = "document.analyze"
	PermJobStart        = "job.start"
	PermJobRead         = "job.read"
	PermAdapterRead     = "adapter.read"
	PermAdapterWrite    = "adapter.write"
	PermTagRead         = "tag.read"
	PermTagWrite        = "tag.write"
	PermAPIKeyManage    = "apikey.manage"
)

// OperationPermissions maps every API operation to the permission it needs.
var OperationPermissions = map[string]string{
	"AnalyzeDocument":            PermDocumentAnalyze,
	"AnalyzeExpense":             PermDocumentAnalyze,
	"AnalyzeID":                  PermDocumentAnalyze,
	"DetectDocumentText":         PermDocumentAnalyze,
	"StartDocumentAnalysis":      PermJobStart,
	"StartDocumentTextDetection": PermJobStart,
	"StartExpenseAnalysis":       PermJobStart,
	"StartLendingAnalysis":       PermJobStart,
	"GetDocumentAnalysis":        PermJobRead,
	"GetDocumentTextDetection":   PermJobRead,
	"GetExpenseAnalysis":         PermJobRead,
	"GetLendingAnalysis":         PermJobRead,
	"GetLendingAnalysisSummary":  PermJobRead,
	"CreateAdapter":              PermAdapterWrite,
	"CreateAdapterVersion":       PermAdapterWrite,
	"UpdateAdapter":              PermAdapterWrite,
	"DeleteAdapter":              PermAdapterWrite,
	"DeleteAdapterVersion":       PermAdapterWrite,
	"GetAdapter":                 PermAdapterRead,
	"GetAdapterVersion":          PermAdapterRead,
	"ListAdapters":               PermAdapterRead,
	"ListAdapterVersions":        PermAdapterRead,
	"ListTagsForResource":        PermTagRead,
	"TagResource":                PermTagWrite,
	"UntagResource":              PermTagWrite,
}

// ForbiddenError indicates missing permission.
type ForbiddenError struct {
	Permission string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("permission %s required", e.Permission)
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ActorID string
	Roles   []string
	// Source is how the caller authenticated: jwt, api_key or anonymous.
	Source string
}

// Service resolves roles and checks permissions against the configured
// role catalog.
type Service struct {
	Repo   repo.Repo
	Config *config.Config
}

// Permissions returns the sorted permissions granted to roles.
func (s Service) Permissions(roles []string) []string {
	var perms []string
	for p := range s.Config.Permissions(roles) {
		perms = append(perms, p)
	}
	sort.Strings(perms)
	return perms
}

// Require fails with ForbiddenError unless one of the principal's roles
// grants perm.
func (s Service) Require(p Principal, perm string) error {
	if s.Config.Permissions(p.Roles)[perm] {
		return nil
	}
	return ForbiddenError{Permission: perm}
}

// RequireOperation checks the permission of an API operation. Unknown
// operations are denied.
func (s Service) RequireOperation(p Principal, op string) error {
	perm, ok := OperationPermissions[op]
	if !ok {
		return ForbiddenError{Permission: "operation." + op}
	}
	return s.Require(p, perm)
}

// ActorRoles returns the roles stored for an actor.
func (s Service) ActorRoles(ctx context.Context, actorID string) ([]string, error) {
	return s.Repo.ActorRoles(ctx, actorID)
}

// Grant records the actor and assigns roles inside tx. Roles must exist in
// the configured catalog.
func (s Service) Grant(ctx context.Context, tx *sql.Tx, actorID string, roles []string, now string) error {
	if actorID == "" {
		return errors.New("actor_id required")
	}
	if err := s.Repo.EnsureActor(ctx, tx, actorID, now); err != nil {
		return fmt.Errorf("ensure actor: %w", err)
	}
	for _, role := range roles {
		if _, ok := s.Config.Auth.Roles[role]; !ok {
			return fmt.Errorf("unknown role %s", role)
		}
		if err := s.Repo.AssignRole(ctx, tx, actorID, role); err != nil {
			return fmt.Errorf("assign role %s: %w", role, err)
		}
	}
	return nil
}
