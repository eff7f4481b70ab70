package service

import (
	"hostel-ledger-backend/internal/domain"
)

var june = domain.NewMonth(2024, 6)

func tenantFixture(id, name string, usesMess bool, deposit domain.Money) domain.Tenant {
	return domain.Tenant{
		ID:             id,
		Name:           name,
		Phone:          "98450" + id,
		RoomID:         "room-1",
		RoomName:       "101",
		JoinDate:       domain.NewDate(2024, 1, 10),
		UsesMess:       usesMess,
		InitialDeposit: deposit,
	}
}

func rentFixture(tenantID string, amount domain.Money) domain.RentPayment {
	return domain.RentPayment{MonthlyPayment: domain.MonthlyPayment{
		ID: "rent-" + tenantID, TenantID: tenantID, TenantName: tenantID, Month: june, Amount: amount, PaymentDate: domain.NewDate(2024, 6, 5),
	}}
}

func messFixture(tenantID string, amount domain.Money) domain.MessPayment {
	return domain.MessPayment{MonthlyPayment: domain.MonthlyPayment{
		ID: "mess-" + tenantID, TenantID: tenantID, TenantName: tenantID, Month: june, Amount: amount, PaymentDate: domain.NewDate(2024, 6, 6),
	}}
}

func depositFixture(tenantID string, typ domain.DepositTransactionType, amount domain.Money, reason string) domain.DepositTransaction {
	return domain.DepositTransaction{
		TenantID: tenantID, TenantName: tenantID, Date: domain.NewDate(2024, 6, 20), Amount: amount, Type: typ, Reason: reason,
	}
}
