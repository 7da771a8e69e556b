// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

var (
	// ErrNotAllowed marks an operation attempted by a company that is not
	// a party to the permission, or by the wrong party.
	ErrNotAllowed = errors.New("company is not allowed to perform this operation")

	// ErrWrongCompanyType marks a grant between companies of unsuitable
	// types: the granter must manage sites, the receiver must inspect them.
	ErrWrongCompanyType = errors.New("permission requires a management granter and a contractor receiver")
)

// PermissionView is a ledger row with the companies' current directory
// names resolved next to the point-in-time snapshots.
type PermissionView struct {
	*types.CompanyPermission
	GranterCompanyCurrentName  string `json:"granter_company_current_name,omitempty"`
	ReceiverCompanyCurrentName string `json:"receiver_company_current_name,omitempty"`
}

type Buckets struct {
	Pending  []*PermissionView `json:"pending"`
	Approved []*PermissionView `json:"approved"`
}

// PartitionedPermissions splits a company's ledger rows by role and
// approval state, the shape the settings page consumes directly.
type PartitionedPermissions struct {
	Granted  Buckets `json:"granted"`
	Received Buckets `json:"received"`
}

// Partition buckets rows by the company's role and the approval flag.
// Rows where the company is neither party are dropped.
func Partition(companyID string, views []*PermissionView) *PartitionedPermissions {
	p := &PartitionedPermissions{
		Granted:  Buckets{Pending: []*PermissionView{}, Approved: []*PermissionView{}},
		Received: Buckets{Pending: []*PermissionView{}, Approved: []*PermissionView{}},
	}

	for _, v := range views {
		switch companyID {
		case v.GranterCompanyID:
			if v.Approval {
				p.Granted.Approved = append(p.Granted.Approved, v)
			} else {
				p.Granted.Pending = append(p.Granted.Pending, v)
			}
		case v.ReceiverCompanyID:
			if v.Approval {
				p.Received.Approved = append(p.Received.Approved, v)
			} else {
				p.Received.Pending = append(p.Received.Pending, v)
			}
		}
	}

	return p
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Request opens a pending grant from a management company to a
// contractor, snapshotting both directory names. A repeated request hits
// the unique (granter, receiver) index and surfaces as ErrDuplicateKey
// with the original row untouched.
func (s *Service) Request(ctx context.Context, granterID, receiverID string) (*types.CompanyPermission, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.Request")
	defer span.End()

	granter, err := s.storage.GetCompanyByID(ctx, granterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve granter: %w", err)
	}
	receiver, err := s.storage.GetCompanyByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}

	if granter.Type != types.CompanyTypeManagement || receiver.Type != types.CompanyTypeContractor {
		return nil, ErrWrongCompanyType
	}

	created, err := s.storage.CreatePermission(ctx, &types.CompanyPermission{
		GranterCompanyID:    granter.ID,
		GranterCompanyName:  granter.Name,
		ReceiverCompanyID:   receiver.ID,
		ReceiverCompanyName: receiver.Name,
		Approval:            false,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().PermissionChange(created.ID, "requested")
	return created, nil
}

// Approve flips the grant to approved. Only the granter may approve.
func (s *Service) Approve(ctx context.Context, companyID, permissionID string) (*types.CompanyPermission, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.Approve")
	defer span.End()

	p, err := s.storage.GetPermissionByID(ctx, permissionID)
	if err != nil {
		return nil, err
	}

	if p.GranterCompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "permission "+permissionID)
		return nil, ErrNotAllowed
	}

	if err := s.storage.SetPermissionApproval(ctx, permissionID, true); err != nil {
		return nil, fmt.Errorf("failed to approve permission: %w", err)
	}

	s.logger.Security().PermissionChange(permissionID, "approved")

	return s.storage.GetPermissionByID(ctx, permissionID)
}

// Revoke deletes the row. Either party may walk away from the grant.
func (s *Service) Revoke(ctx context.Context, companyID, permissionID string) error {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.Revoke")
	defer span.End()

	p, err := s.storage.GetPermissionByID(ctx, permissionID)
	if err != nil {
		return err
	}

	if p.GranterCompanyID != companyID && p.ReceiverCompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "permission "+permissionID)
		return ErrNotAllowed
	}

	if err := s.storage.DeletePermission(ctx, permissionID); err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}

	s.logger.Security().PermissionChange(permissionID, "revoked")
	return nil
}

// ListForCompany returns the company's ledger partitioned by role and
// approval, with current directory names resolved alongside the
// snapshots. A company deleted from the directory leaves its current
// name empty; the snapshot still renders.
func (s *Service) ListForCompany(ctx context.Context, companyID string) (*PartitionedPermissions, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.ListForCompany")
	defer span.End()

	perms, err := s.storage.ListPermissionsForCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	names := make(map[string]string)
	currentName := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		c, err := s.storage.GetCompanyByID(ctx, id)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				s.logger.Warnf("failed to resolve company %s: %v", id, err)
			}
			names[id] = ""
			return ""
		}
		names[id] = c.Name
		return c.Name
	}

	views := make([]*PermissionView, 0, len(perms))
	for _, p := range perms {
		views = append(views, &PermissionView{
			CompanyPermission:          p,
			GranterCompanyCurrentName:  currentName(p.GranterCompanyID),
			ReceiverCompanyCurrentName: currentName(p.ReceiverCompanyID),
		})
	}

	return Partition(companyID, views), nil
}

// ListApprovedContractors resolves the contractors a management company
// has approved, the pick list offered during site creation.
func (s *Service) ListApprovedContractors(ctx context.Context, granterID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.ListApprovedContractors")
	defer span.End()

	ids, err := s.storage.ListApprovedReceiverIDs(ctx, granterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved receivers: %w", err)
	}

	contractors := make([]*types.Company, 0, len(ids))
	for _, id := range ids {
		c, err := s.storage.GetCompanyByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve contractor %s: %w", id, err)
		}
		contractors = append(contractors, c)
	}

	return contractors, nil
}
