package workflow

import "atelier_backoffice/internal/domain/entities"

// Repair lifecycle actions.
const (
	RepairReceive        Action = "receive"
	RepairStartDiagnosis Action = "start_diagnosis"
	RepairDiagnose       Action = "diagnose"
	RepairCreateQuote    Action = "create_quote"
	RepairApproveQuote   Action = "approve_quote"
	RepairRejectQuote    Action = "reject_quote"
	RepairOrderParts     Action = "order_parts"
	RepairStart          Action = "start_repair"
	RepairStartTesting   Action = "start_testing"
	RepairMarkReady      Action = "mark_ready"
	RepairRecordPayment  Action = "record_payment"
	RepairPickup         Action = "pickup"
	RepairReview         Action = "review"
	RepairCancel         Action = "cancel"
)

// RepairTable is the static transition map for device repair requests.
//
// Technician binding (a technician actor must be the assigned technician) is
// an additional check applied by the executor on top of these rules.
var RepairTable = NewTable(EntityRepair, repairRules())

func repairRules() []Rule {
	shop := []entities.Role{entities.RoleAdmin, entities.RoleTechnician}
	ownerOrAdmin := []entities.Role{entities.RoleCustomer, entities.RoleAdmin}
	owner := []entities.Role{entities.RoleCustomer}
	admin := []entities.Role{entities.RoleAdmin}

	s := func(st entities.RepairStatus) State { return State(st) }

	rules := []Rule{
		{From: s(entities.RepairStatusPending), Action: RepairReceive, To: s(entities.RepairStatusReceived), Roles: shop},
		{From: s(entities.RepairStatusReceived), Action: RepairStartDiagnosis, To: s(entities.RepairStatusDiagnosing), Roles: shop},
		{From: s(entities.RepairStatusReceived), Action: RepairDiagnose, To: s(entities.RepairStatusDiagnosed), Roles: shop},
		{From: s(entities.RepairStatusDiagnosing), Action: RepairDiagnose, To: s(entities.RepairStatusDiagnosed), Roles: shop},
		{From: s(entities.RepairStatusDiagnosed), Action: RepairCreateQuote, To: s(entities.RepairStatusQuoteSent), Roles: shop},
		{From: s(entities.RepairStatusQuoteSent), Action: RepairApproveQuote, To: s(entities.RepairStatusQuoteApproved), Roles: ownerOrAdmin, OwnerOnly: true},
		{From: s(entities.RepairStatusQuoteSent), Action: RepairRejectQuote, To: s(entities.RepairStatusQuoteRejected), Roles: ownerOrAdmin, OwnerOnly: true},
		{From: s(entities.RepairStatusQuoteApproved), Action: RepairOrderParts, To: s(entities.RepairStatusWaitingParts), Roles: shop},
		{From: s(entities.RepairStatusQuoteApproved), Action: RepairStart, To: s(entities.RepairStatusInRepair), Roles: shop},
		{From: s(entities.RepairStatusWaitingParts), Action: RepairStart, To: s(entities.RepairStatusInRepair), Roles: shop},
		{From: s(entities.RepairStatusInRepair), Action: RepairStartTesting, To: s(entities.RepairStatusTesting), Roles: shop},
		{From: s(entities.RepairStatusTesting), Action: RepairMarkReady, To: s(entities.RepairStatusReadyForPickup), Roles: shop},
		{From: s(entities.RepairStatusReadyForPickup), Action: RepairPickup, To: s(entities.RepairStatusCompleted), Roles: shop},
		// A review does not move the repair; it is a one-shot post-completion
		// attachment recorded through the same executor for auditability.
		{From: s(entities.RepairStatusCompleted), Action: RepairReview, To: s(entities.RepairStatusCompleted), Roles: owner, OwnerOnly: true},
	}

	for _, st := range []entities.RepairStatus{
		entities.RepairStatusQuoteApproved,
		entities.RepairStatusWaitingParts,
		entities.RepairStatusInRepair,
		entities.RepairStatusTesting,
		entities.RepairStatusReadyForPickup,
	} {
		rules = append(rules, Rule{From: s(st), Action: RepairRecordPayment, To: s(st), Roles: admin})
	}

	for _, st := range []entities.RepairStatus{
		entities.RepairStatusPending,
		entities.RepairStatusReceived,
		entities.RepairStatusDiagnosing,
		entities.RepairStatusDiagnosed,
		entities.RepairStatusQuoteSent,
	} {
		rules = append(rules, Rule{From: s(st), Action: RepairCancel, To: s(entities.RepairStatusCancelled), Roles: ownerOrAdmin, OwnerOnly: true})
	}
	return rules
}
