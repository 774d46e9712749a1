package statement

import (
	"strconv"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/tealeg/xlsx"
)

func writeXLSX(path string, details accountsvc.Details, history []*account.Transaction) error {
	file := xlsx.NewFile()

	summary, err := file.AddSheet("Account")
	if err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"Holder", details.Holder},
		{"Account Number", strconv.Itoa(details.Number)},
		{"Phone Number", details.Phone},
		{"Current Balance", details.Balance.Display()},
	} {
		r := summary.AddRow()
		r.AddCell().SetValue(kv[0])
		r.AddCell().SetValue(kv[1])
	}

	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return err
	}
	header := sheet.AddRow()
	for _, c := range columns {
		header.AddCell().SetValue(c)
	}
	for _, tx := range history {
		r := sheet.AddRow()
		for _, v := range row(tx) {
			r.AddCell().SetValue(v)
		}
	}
	return file.Save(path)
}
