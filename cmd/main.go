package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"BranchMap-App/internal/domain/repository"
	"BranchMap-App/internal/handler"
	"BranchMap-App/internal/infrastructure/database"
	"BranchMap-App/internal/infrastructure/firestore"
	"BranchMap-App/internal/infrastructure/maps"
	repoImpl "BranchMap-App/internal/repository"
	"BranchMap-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// ストレージバックエンドの選択 (sqlite / supabase / postgres)
	datasetRepo, cleanup, err := buildDatasetRepository()
	if err != nil {
		log.Fatalf("ストレージ初期化失敗: %v", err)
	}
	defer cleanup()

	// 経路プロバイダ（OSRM）
	directionsProvider := maps.NewOSRMDirectionsProvider()

	// ユースケースの初期化
	insightUseCase := usecase.NewBranchInsightUseCase(datasetRepo)
	routeQueryUseCase := usecase.NewRouteQueryUseCase(insightUseCase, directionsProvider)

	// ハンドラーの初期化
	branchesHandler := handler.NewBranchesHandler(insightUseCase)
	employeesHandler := handler.NewEmployeesHandler(insightUseCase)
	routesHandler := handler.NewRoutesHandler(routeQueryUseCase)
	tablesHandler := handler.NewTablesHandler(insightUseCase)

	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "BranchMap-App"})
	})

	api := r.Group("/api")
	{
		api.GET("/branches", branchesHandler.ListBranches)
		api.GET("/branches/:unit", branchesHandler.GetBranchDetail)
		api.GET("/employees", employeesHandler.ListEmployees)
		api.GET("/route", routesHandler.QueryRoute)
		api.GET("/diagnostics", branchesHandler.GetDiagnostics)
		api.POST("/tables/:name", tablesHandler.ReplaceTable)
	}

	// ローテーション記録はFirestoreが設定されている場合のみ有効
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		fsClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer fsClient.Close()

		rotationRepo := repoImpl.NewFirestoreRotationRepository(fsClient.GetClient())
		rotationUseCase := usecase.NewRotationUseCase(rotationRepo)
		rotationsHandler := handler.NewRotationsHandler(rotationUseCase)

		api.POST("/rotations", rotationsHandler.CreateBatch)
		api.GET("/rotations", rotationsHandler.ListBatches)
		api.GET("/rotations/:id", rotationsHandler.GetBatch)
		api.PUT("/rotations/:id", rotationsHandler.UpdateBatch)
		api.DELETE("/rotations/:id", rotationsHandler.DeleteBatch)
	} else {
		fmt.Println("⚠️ FIRESTORE_PROJECT_ID が未設定のため、ローテーションAPIは無効です")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("BranchMap-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

// buildDatasetRepository STORAGE_BACKEND に応じてデータセットリポジトリを構築する
func buildDatasetRepository() (repository.DatasetRepository, func(), error) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "sqlite"
	}

	switch backend {
	case "sqlite":
		fmt.Println("Initializing SQLite storage...")
		client, err := database.NewSQLiteClient()
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		fmt.Println("✅ SQLite connection successful!")
		return repoImpl.NewSQLiteDatasetRepository(client), func() { client.Close() }, nil

	case "supabase":
		fmt.Println("Initializing Supabase client...")
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		fmt.Println("✅ Supabase connection successful!")
		return repoImpl.NewSupabaseDatasetRepository(client), func() {}, nil

	case "postgres":
		fmt.Println("Initializing PostgreSQL client...")
		client, err := database.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		fmt.Println("✅ PostgreSQL connection successful!")
		return repoImpl.NewPostgresDatasetRepository(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("未知のストレージバックエンド: %s", backend)
	}
}
