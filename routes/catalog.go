package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	attributeControllers "github.com/ductho-dev/ecommerce-api/controllers/attribute"
	categoryControllers "github.com/ductho-dev/ecommerce-api/controllers/category"
	productcontroller "github.com/ductho-dev/ecommerce-api/controllers/product"
	sizeControllers "github.com/ductho-dev/ecommerce-api/controllers/size"
	tagControllers "github.com/ductho-dev/ecommerce-api/controllers/tag"
)

// SetupCatalogRoutes registers the product graph: products, categories,
// tags, attributes, attribute values, and sizes. Products live under /api,
// everything else under /api/v1.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(db))
		api.POST("/products", productcontroller.CreateProduct(db))
		api.GET("/products/export", productcontroller.ExportProductsToExcel(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))
		api.PUT("/products/:id", productcontroller.UpdateProduct(db))
		api.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		api.PATCH("/products/:id/featured", productcontroller.ToggleFeatured(db))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/category", categoryControllers.GetCategories(db))
		v1.POST("/category", categoryControllers.CreateCategory(db))
		v1.GET("/category/:id", categoryControllers.GetCategoryByID(db))
		v1.PUT("/category/:id", categoryControllers.UpdateCategory(db))
		v1.DELETE("/category/:id", categoryControllers.DeleteCategory(db))

		v1.GET("/tags", tagControllers.GetTags(db))
		v1.POST("/tags", tagControllers.CreateTag(db))
		v1.GET("/tags/:id", tagControllers.GetTagByID(db))
		v1.PUT("/tags/:id", tagControllers.UpdateTag(db))
		v1.DELETE("/tags/:id", tagControllers.DeleteTag(db))

		v1.GET("/attributes", attributeControllers.GetAttributes(db))
		v1.POST("/attributes", attributeControllers.CreateAttribute(db))
		v1.GET("/attributes/:id", attributeControllers.GetAttributeByID(db))
		v1.PUT("/attributes/:id", attributeControllers.UpdateAttribute(db))
		v1.DELETE("/attributes/:id", attributeControllers.DeleteAttribute(db))
		v1.POST("/attributes/:id/values", attributeControllers.CreateValueForAttribute(db))

		v1.GET("/attributesvalues", attributeControllers.GetValues(db))
		v1.POST("/attributesvalues", attributeControllers.CreateValue(db))
		v1.GET("/attributesvalues/:id", attributeControllers.GetValueByID(db))
		v1.PUT("/attributesvalues/:id", attributeControllers.UpdateValue(db))
		v1.DELETE("/attributesvalues/:id", attributeControllers.DeleteValue(db))

		v1.GET("/size", sizeControllers.GetSizes(db))
		v1.POST("/size", sizeControllers.CreateSize(db))
		v1.GET("/size/:id", sizeControllers.GetSizeByID(db))
		v1.PUT("/size/:id", sizeControllers.UpdateSize(db))
		v1.DELETE("/size/:id", sizeControllers.DeleteSize(db))
	}
}
