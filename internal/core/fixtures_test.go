package core

import "time"

// sampleTransactions mirrors a small slice of a real export: two cards,
// five spends in December 2021.
func sampleTransactions() []Transaction {
	mk := func(op string, payment, card, amount, category, description string) Transaction {
		d, err := ParseOperationDate(op)
		if err != nil {
			panic(err)
		}
		m, err := ParseMoney(amount)
		if err != nil {
			panic(err)
		}
		return Transaction{
			OperationDate: d,
			PaymentDate:   payment,
			Card:          CardNumber(card),
			Amount:        m,
			Category:      category,
			Description:   description,
		}
	}
	return []Transaction{
		mk("20.12.2021 12:00:00", "20.12.2021", "**1234", "-100", "Супермаркеты", "Лента"),
		mk("21.12.2021 18:30:00", "21.12.2021", "**1234", "-200", "Рестораны", "Пицца"),
		mk("22.12.2021 09:15:00", "22.12.2021", "**5678", "-50", "Супермаркеты", "Ашан"),
		mk("23.12.2021 20:00:00", "23.12.2021", "**5678", "-150", "Развлечения", "Кино"),
		mk("24.12.2021 11:45:00", "24.12.2021", "**5678", "-300", "Супермаркеты", "Магнит"),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
