package api

import (
	"github.com/leon37/FinLedger/internal/api/controller"
	"github.com/leon37/FinLedger/internal/api/middleware"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/gin-gonic/gin"
)

// Controllers 路由注册需要的全部控制器
type Controllers struct {
	Auth             *controller.AuthController
	Category         *controller.CategoryController
	Tag              *controller.TagController
	PaymentMethod    *controller.PaymentMethodController
	Expense          *controller.ExpenseController
	Income           *controller.IncomeController
	Investment       *controller.InvestmentController
	FinancialProduct *controller.FinancialProductController
	Debt             *controller.DebtController
	Budget           *controller.BudgetController
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, ctrls Controllers, userRepo *repository.UserRepository) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
		auth.GET("/me", middleware.JWTAuth(userRepo), ctrls.Auth.Me)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(userRepo))
	{
		categories := protected.Group("/categories")
		{
			categories.POST("", ctrls.Category.Create)
			categories.GET("", ctrls.Category.List)
			categories.GET("/:id", ctrls.Category.Get)
			categories.PUT("/:id", ctrls.Category.Update)
			categories.DELETE("/:id", ctrls.Category.Delete)
		}

		tags := protected.Group("/tags")
		{
			tags.POST("", ctrls.Tag.Create)
			tags.GET("", ctrls.Tag.List)
			tags.GET("/:id", ctrls.Tag.Get)
			tags.PUT("/:id", ctrls.Tag.Update)
			tags.DELETE("/:id", ctrls.Tag.Delete)
		}

		paymentMethods := protected.Group("/payment-methods")
		{
			paymentMethods.POST("", ctrls.PaymentMethod.Create)
			paymentMethods.GET("", ctrls.PaymentMethod.List)
			paymentMethods.GET("/:id", ctrls.PaymentMethod.Get)
			paymentMethods.PUT("/:id", ctrls.PaymentMethod.Update)
			paymentMethods.DELETE("/:id", ctrls.PaymentMethod.Delete)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.POST("", ctrls.Expense.Create)
			expenses.GET("", ctrls.Expense.List)
			expenses.GET("/summary/category", ctrls.Expense.SummaryByCategory)
			expenses.GET("/:id", ctrls.Expense.Get)
			expenses.PUT("/:id", ctrls.Expense.Update)
			expenses.DELETE("/:id", ctrls.Expense.Delete)
		}

		incomes := protected.Group("/incomes")
		{
			incomes.POST("", ctrls.Income.Create)
			incomes.GET("", ctrls.Income.List)
			incomes.GET("/summary/source", ctrls.Income.SummaryBySource)
			incomes.GET("/:id", ctrls.Income.Get)
			incomes.PUT("/:id", ctrls.Income.Update)
			incomes.DELETE("/:id", ctrls.Income.Delete)
		}

		investments := protected.Group("/investments")
		{
			investments.POST("", ctrls.Investment.Create)
			investments.GET("", ctrls.Investment.List)
			investments.GET("/summary/type", ctrls.Investment.SummaryByType)
			investments.GET("/performance/total", ctrls.Investment.Performance)
			investments.GET("/:id", ctrls.Investment.Get)
			investments.PUT("/:id", ctrls.Investment.Update)
			investments.DELETE("/:id", ctrls.Investment.Delete)
		}

		products := protected.Group("/financial-products")
		{
			products.POST("", ctrls.FinancialProduct.Create)
			products.GET("", ctrls.FinancialProduct.List)
			products.GET("/summary/type", ctrls.FinancialProduct.SummaryByType)
			products.GET("/balance/total", ctrls.FinancialProduct.TotalBalance)
			products.GET("/:id", ctrls.FinancialProduct.Get)
			products.PUT("/:id", ctrls.FinancialProduct.Update)
			products.DELETE("/:id", ctrls.FinancialProduct.Delete)
		}

		debts := protected.Group("/debts")
		{
			debts.POST("", ctrls.Debt.Create)
			debts.GET("", ctrls.Debt.List)
			debts.GET("/summary/type", ctrls.Debt.SummaryByType)
			debts.GET("/balance/total", ctrls.Debt.TotalBalance)
			debts.GET("/:id", ctrls.Debt.Get)
			debts.PUT("/:id", ctrls.Debt.Update)
			debts.DELETE("/:id", ctrls.Debt.Delete)
			debts.PUT("/:id/pay-off", ctrls.Debt.PayOff)
		}

		budgets := protected.Group("/budgets")
		{
			budgets.POST("", ctrls.Budget.Create)
			budgets.GET("", ctrls.Budget.List)
			budgets.GET("/:id", ctrls.Budget.Get)
			budgets.PUT("/:id", ctrls.Budget.Update)
			budgets.DELETE("/:id", ctrls.Budget.Delete)
			budgets.GET("/:id/comparison", ctrls.Budget.Comparison)
			budgets.POST("/:id/items", ctrls.Budget.AddItem)
			budgets.PUT("/:id/items/:item_id", ctrls.Budget.UpdateItem)
			budgets.DELETE("/:id/items/:item_id", ctrls.Budget.DeleteItem)
		}
	}
}
