package seed

import (
	"fmt"

	"github.com/google/uuid"
)

type userFixture struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type customerFixture struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type invoiceFixture struct {
	Customer int // index into customers
	Amount   int64
	Status   string
	Date     string
}

type revenueFixture struct {
	Month   string
	Revenue int64
}

var users = []userFixture{
	{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com", Password: "123456"},
}

var customers = []customerFixture{
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "3958dc9e-737f-4377-85e9-fec4b6a6442a", Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
	{ID: "50ca3e18-62cd-11ee-8c99-0242ac120002", Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
	{ID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Name: "Steph Dietz", Email: "steph@dietz.com", ImageURL: "/customers/steph-dietz.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", Name: "Emil Kowalski", Email: "emil@kowalski.com", ImageURL: "/customers/emil-kowalski.png"},
	{ID: "CC27C14A-0ACF-4F4A-A6C9-D45682C144B9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13D07535-C59E-4157-A011-F8D2EF4E0CBB", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var invoices = []invoiceFixture{
	{Customer: 0, Amount: 15795, Status: "pending", Date: "2022-12-06"},
	{Customer: 1, Amount: 20348, Status: "pending", Date: "2022-11-14"},
	{Customer: 4, Amount: 3040, Status: "paid", Date: "2022-10-29"},
	{Customer: 3, Amount: 44800, Status: "paid", Date: "2023-09-10"},
	{Customer: 5, Amount: 34577, Status: "pending", Date: "2023-08-05"},
	{Customer: 7, Amount: 54246, Status: "pending", Date: "2023-07-16"},
	{Customer: 6, Amount: 666, Status: "pending", Date: "2023-06-27"},
	{Customer: 3, Amount: 32545, Status: "paid", Date: "2023-06-09"},
	{Customer: 4, Amount: 1250, Status: "paid", Date: "2023-06-17"},
	{Customer: 5, Amount: 8546, Status: "paid", Date: "2023-06-07"},
	{Customer: 1, Amount: 500, Status: "paid", Date: "2023-08-19"},
	{Customer: 5, Amount: 8945, Status: "paid", Date: "2023-06-03"},
	{Customer: 2, Amount: 8945, Status: "paid", Date: "2023-06-18"},
	{Customer: 0, Amount: 8945, Status: "paid", Date: "2023-10-04"},
	{Customer: 2, Amount: 1000, Status: "paid", Date: "2022-06-05"},
}

var revenue = []revenueFixture{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

// invoiceID is stable across runs so reseeding never duplicates invoices.
func invoiceID(i int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("invoice-%d", i)))
}
