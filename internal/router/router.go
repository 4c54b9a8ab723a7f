package router

import (
	"context"
	"time"

	"licoreria/internal/config"
	"licoreria/internal/handler"
	"licoreria/internal/middleware"
	"licoreria/internal/repository"
	"licoreria/internal/service"
	"licoreria/internal/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store (Redis)
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Store y repositorios ─────────────────────────────────────────────────
	// Repositories load their collection at startup and mirror every mutation
	// back to the store, so construction happens once, here.
	ctx := context.Background()
	st := store.NewRedisStore(rdb)

	productoRepo := repository.NewProductoRepository(ctx, st)
	categoriaRepo := repository.NewCategoriaRepository(ctx, st)
	ventaRepo := repository.NewVentaRepository(ctx, st)
	deudaRepo := repository.NewDeudaRepository(ctx, st)
	clienteRepo := repository.NewClienteRepository(ctx, st)
	cajaRepo := repository.NewCajaRepository(ctx, st)
	historialRepo := repository.NewHistorialRepository(ctx, st)
	sesionRepo := repository.NewSesionRepository(ctx, st)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg, sesionRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, historialRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, deudaRepo, cajaRepo)
	deudaSvc := service.NewDeudaService(deudaRepo, ventaRepo)
	clienteSvc := service.NewClienteService(clienteRepo, deudaRepo)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo, productoRepo)
	resumenSvc := service.NewResumenService(productoRepo, ventaRepo, deudaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	deudasH := handler.NewDeudasHandler(deudaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)

		v1.POST("/ventas", ventasH.Registrar)
		v1.GET("/ventas", ventasH.Listar)

		prods := v1.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.POST("", productosH.Crear)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.GET("/:id/historial", productosH.Historial)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:nombre", categoriasH.Renombrar)
			categorias.DELETE("/:nombre", categoriasH.Eliminar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Crear)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		deudas := v1.Group("/deudas")
		{
			deudas.GET("", deudasH.Listar)
			deudas.GET("/:id", deudasH.ObtenerPorID)
			deudas.POST("/:id/abonos", deudasH.RegistrarAbono)
		}

		caja := v1.Group("/caja")
		{
			caja.GET("/:fecha/reporte", cajaH.Reporte)
			caja.GET("/:fecha/reporte.pdf", cajaH.ReportePDF)
			caja.PUT("/:fecha/apertura", cajaH.GuardarApertura)
			caja.POST("/:fecha/cerrar", cajaH.Cerrar)
			caja.POST("/:fecha/reabrir", cajaH.Reabrir)
		}

		v1.GET("/resumen", resumenH.Obtener)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
