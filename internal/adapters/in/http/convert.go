package http

import (
	"market/internal/adapters/in/http/api"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernel(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelList(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		k, err := toKernel(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func pageOrFirst(page *int) int {
	if page == nil {
		return 1
	}
	return *page
}

func toOrderSummary(o queries.OrderSummary) api.OrderSummary {
	return api.OrderSummary{
		Id:           o.ID.Bytes(),
		Status:       o.Status,
		Total:        o.Total.String(),
		ProductCount: o.ProductCount,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toProductPage(page queries.Page[queries.ProductView]) api.ProductPage {
	data := make([]api.Product, 0, len(page.Data))
	for _, p := range page.Data {
		data = append(data, api.Product{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Sku:         p.SKU,
			Brand:       p.Brand,
			Category:    p.Category,
			Description: p.Description,
			Unit:        p.Unit,
			Weight:      p.Weight,
			Price:       p.Price.String(),
		})
	}
	return api.ProductPage{Count: page.Count, Data: data}
}
