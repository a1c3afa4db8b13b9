package model

import "time"

// AwardType is a recognition tier. Lower OrderIndex means higher prestige
// and earlier assignment; inactive types are skipped by auto-assignment.
type AwardType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
	IsActive    int    `json:"isActive"`
}

type AwardTypePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
	IsActive    *int    `json:"isActive"`
}

func (a AwardType) Merge(patch AwardTypePatch) AwardType {
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.OrderIndex != nil {
		a.OrderIndex = *patch.OrderIndex
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	return a
}

// DelegateAward is one award grant. Award type and delegate are referenced
// by id plus denormalized name so the record survives later deletions.
type DelegateAward struct {
	ID             string    `json:"id"`
	CommitteeID    string    `json:"committeeId"`
	CommitteeName  string    `json:"committeeName"`
	AwardTypeID    string    `json:"awardTypeId"`
	AwardTypeName  string    `json:"awardTypeName"`
	DelegateID     string    `json:"delegateId"`
	DelegateName   string    `json:"delegateName"`
	IsAutoAssigned int       `json:"isAutoAssigned"`
	AssignedBy     string    `json:"assignedBy"`
	Timestamp      time.Time `json:"timestamp"`
}

type DelegateAwardPatch struct {
	CommitteeID    *string `json:"committeeId"`
	CommitteeName  *string `json:"committeeName"`
	AwardTypeID    *string `json:"awardTypeId"`
	AwardTypeName  *string `json:"awardTypeName"`
	DelegateID     *string `json:"delegateId"`
	DelegateName   *string `json:"delegateName"`
	IsAutoAssigned *int    `json:"isAutoAssigned"`
	AssignedBy     *string `json:"assignedBy"`
}

func (a DelegateAward) Merge(patch DelegateAwardPatch) DelegateAward {
	if patch.CommitteeID != nil {
		a.CommitteeID = *patch.CommitteeID
	}
	if patch.CommitteeName != nil {
		a.CommitteeName = *patch.CommitteeName
	}
	if patch.AwardTypeID != nil {
		a.AwardTypeID = *patch.AwardTypeID
	}
	if patch.AwardTypeName != nil {
		a.AwardTypeName = *patch.AwardTypeName
	}
	if patch.DelegateID != nil {
		a.DelegateID = *patch.DelegateID
	}
	if patch.DelegateName != nil {
		a.DelegateName = *patch.DelegateName
	}
	if patch.IsAutoAssigned != nil {
		a.IsAutoAssigned = *patch.IsAutoAssigned
	}
	if patch.AssignedBy != nil {
		a.AssignedBy = *patch.AssignedBy
	}
	return a
}
