package workflow

import "atelier_backoffice/internal/domain/entities"

// Deposit confirmation actions. Funds are only credited by an external
// collaborator after confirmed is reached; no action here touches balances.
const (
	DepositUploadReceipt   Action = "upload_receipt"
	DepositRequestReceipt  Action = "request_receipt"
	DepositAttachReceipt   Action = "attach_receipt"
	DepositAdminConfirm    Action = "admin_confirm"
	DepositInvestorConfirm Action = "investor_confirm"
	DepositDispute         Action = "dispute"
	DepositResolveDispute  Action = "resolve_dispute"
)

// DepositTable is the static transition map for the two-party deposit
// confirmation workflow. Each branch is closed by the counterparty: the
// investor's receipt is confirmed by an admin, the admin's receipt is
// confirmed (or disputed) by the investor.
var DepositTable = NewTable(EntityDeposit, depositRules())

func depositRules() []Rule {
	admin := []entities.Role{entities.RoleAdmin}
	investor := []entities.Role{entities.RoleInvestor}

	s := func(st entities.DepositConfirmationStatus) State { return State(st) }

	return []Rule{
		{From: s(entities.DepositStatusAwaitingPayment), Action: DepositUploadReceipt, To: s(entities.DepositStatusAwaitingAdmin), Roles: investor, OwnerOnly: true},
		{From: s(entities.DepositStatusAwaitingPayment), Action: DepositRequestReceipt, To: s(entities.DepositStatusAwaitingReceipt), Roles: admin},
		{From: s(entities.DepositStatusAwaitingReceipt), Action: DepositAttachReceipt, To: s(entities.DepositStatusPendingConfirm), Roles: admin},
		{From: s(entities.DepositStatusAwaitingAdmin), Action: DepositAdminConfirm, To: s(entities.DepositStatusConfirmed), Roles: admin},
		{From: s(entities.DepositStatusPendingConfirm), Action: DepositInvestorConfirm, To: s(entities.DepositStatusConfirmed), Roles: investor, OwnerOnly: true},
		{From: s(entities.DepositStatusPendingConfirm), Action: DepositDispute, To: s(entities.DepositStatusDisputed), Roles: investor, OwnerOnly: true},
		{From: s(entities.DepositStatusDisputed), Action: DepositResolveDispute, To: s(entities.DepositStatusPendingConfirm), Roles: admin},
	}
}
