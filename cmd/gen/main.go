package main

import (
	"restops/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MessageModel{},
		model.ShopModel{},
		model.BranchModel{},
		model.ManagerModel{},
		model.CashierModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
