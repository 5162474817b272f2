package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/model"
	"aicompliance/internal/repository"
	"aicompliance/internal/service"
)

// Baseline regulatory news so the feed is not empty before the first
// collection run.
var sampleNews = []model.NewsItem{
	{
		Title:          "Nuevo Reglamento de IA de la UE: Impacto en Startups de Salud Digital",
		URL:            "https://eur-lex.europa.eu/legal-content/ES/TXT/?uri=CELEX:32024R1689",
		Summary:        "El Reglamento de IA de la UE establece nuevos requisitos para sistemas de IA de alto riesgo en el sector sanitario, incluyendo evaluaciones de conformidad y supervisión humana obligatoria.",
		AISummary:      "Para startups de salud digital, el EU AI Act requiere: 1) Evaluación de conformidad para sistemas de diagnóstico automático, 2) Implementación de supervisión humana continua, 3) Documentación detallada de algoritmos médicos. Las empresas tienen hasta mayo 2025 para cumplir con estos requisitos.",
		Source:         "EUR-Lex",
		Category:       "regulation",
		Language:       "es",
		RelevanceScore: 9.5,
		Tags:           []string{"ai", "medical", "regulation", "eu", "gdpr"},
	},
	{
		Title:          "AEMPS Publica Guía para Dispositivos Médicos con IA",
		URL:            "https://www.aemps.gob.es/industria/uso-humano/productos-sanitarios-ps/ps-inteligencia-artificial/",
		Summary:        "La Agencia Española de Medicamentos publica nuevas directrices para la evaluación de dispositivos médicos que incorporan inteligencia artificial.",
		AISummary:      "La AEMPS establece que los dispositivos médicos con IA deben: 1) Demostrar validación clínica específica, 2) Implementar mecanismos de monitoreo post-comercialización, 3) Mantener actualizaciones de seguridad. Requisito especial para startups de salud digital en España.",
		Source:         "AEMPS",
		Category:       "regulation",
		Language:       "es",
		RelevanceScore: 8.8,
		Tags:           []string{"medical", "ai", "spain", "regulation"},
	},
	{
		Title:          "DGSFP Actualiza Normativa para Insurtech y uso de IA",
		URL:            "https://www.dgsfp.mineco.gob.es/sector/documentos/circulares/",
		Summary:        "La Dirección General de Seguros actualiza las regulaciones para empresas insurtech que utilizan algoritmos de IA en la evaluación de riesgos.",
		AISummary:      "Para empresas insurtech, la nueva normativa requiere: 1) Transparencia en algoritmos de suscripción automática, 2) Derecho de explicación para decisiones automatizadas, 3) Auditorías periódicas de sesgo algorítmico. Implementación obligatoria en 2025.",
		Source:         "DGSFP",
		Category:       "regulation",
		Language:       "es",
		RelevanceScore: 9.0,
		Tags:           []string{"insurance", "ai", "spain", "regulation"},
	},
	{
		Title:          "GDPR y IA: Nuevas Directrices de la Comisión Europea",
		URL:            "https://ec.europa.eu/commission/presscorner/detail/es/ip_2024_456",
		Summary:        "La Comisión Europea publica nuevas directrices sobre la aplicación del GDPR a sistemas de inteligencia artificial.",
		AISummary:      "Las nuevas directrices GDPR-IA establecen: 1) Consentimiento específico para procesamiento de IA, 2) Evaluaciones de impacto obligatorias para IA de alto riesgo, 3) Principios de minimización de datos para entrenamientos de modelos. Afecta especialmente a startups que procesan datos de salud.",
		Source:         "Comisión Europea",
		Category:       "regulation",
		Language:       "es",
		RelevanceScore: 8.5,
		Tags:           []string{"gdpr", "ai", "eu", "data_protection"},
	},
	{
		Title:          "BOE: Nueva Ley de Digitalización del Sistema Sanitario",
		URL:            "https://www.boe.es/diario_boe/txt.php?id=BOE-A-2024-3456",
		Summary:        "El BOE publica la nueva Ley de Digitalización del Sistema Nacional de Salud que incluye disposiciones específicas para sistemas de IA médica.",
		AISummary:      "La nueva ley establece un marco regulatorio específico para startups de salud digital en España: 1) Certificación obligatoria para IA de diagnóstico, 2) Interoperabilidad con sistemas públicos de salud, 3) Estándares de ciberseguridad reforzados. Entrada en vigor en julio 2025.",
		Source:         "BOE",
		Category:       "regulation",
		Language:       "es",
		RelevanceScore: 9.2,
		Tags:           []string{"medical", "spain", "regulation", "health_law"},
	},
	{
		Title:          "Fondo Europeo de Innovación: 500M€ para IA Responsable en Salud",
		URL:            "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/opportunities/topic-details/horizon-hlth-2024-care-04-02",
		Summary:        "La UE lanza un programa de financiación específico para startups que desarrollen soluciones de IA responsable en el sector sanitario.",
		AISummary:      "El programa Horizon Europe destina 500 millones de euros para startups de salud digital que cumplan con el EU AI Act. Requisitos: 1) Demostración de cumplimiento normativo, 2) Validación clínica previa, 3) Plan de escalabilidad europea. Convocatoria abierta hasta marzo 2025.",
		Source:         "Horizon Europe",
		Category:       "funding",
		Language:       "es",
		RelevanceScore: 8.0,
		Tags:           []string{"funding", "ai", "medical", "eu"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "aicompliance"
	}
	db := client.Database(dbName)

	log.Println("Initializing news data...")

	newsColl := db.Collection("news_items")
	if _, err := newsColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear news items: %v", err)
	}
	log.Println("Cleared existing news items")

	newsRepo := repository.NewNewsRepo(db)
	scrapedAt := time.Now().UTC().Add(-24 * time.Hour)

	for _, item := range sampleNews {
		item.ID = service.NewsItemID(item.URL)
		item.ScrapedAt = scrapedAt

		if err := newsRepo.Insert(ctx, &item); err != nil {
			log.Fatalf("Failed to insert news item %q: %v", item.Title, err)
		}
		log.Printf("Added: %s", item.Title)
	}

	if err := newsRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("Index creation warning: %v", err)
	} else {
		log.Println("Created text search indexes")
	}

	log.Printf("Successfully initialized %d news items", len(sampleNews))
}
