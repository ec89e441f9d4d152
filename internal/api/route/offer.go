package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/controller"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

func RegisterOfferRoutes(app *fiber.App, svc *offers.Service) error {
	authMiddleware := IdentifyUser()
	offerC := controller.NewOfferController(svc)

	vacancies := app.Group("/vacancies")
	vacancies.Post("/", authMiddleware, offerC.CreateVacancy)
	vacancies.Get("/", authMiddleware, offerC.ListVacancies)
	vacancies.Get("/:id", authMiddleware, offerC.GetVacancy)
	vacancies.Post("/:id/close", authMiddleware, offerC.CloseVacancy)
	vacancies.Delete("/:id", authMiddleware, offerC.DeleteVacancy)

	partnershipOffers := app.Group("/partnership-offers")
	partnershipOffers.Post("/", authMiddleware, offerC.CreateOffer)
	partnershipOffers.Get("/", authMiddleware, offerC.ListOffers)
	partnershipOffers.Get("/:id", authMiddleware, offerC.GetOffer)
	partnershipOffers.Post("/:id/close", authMiddleware, offerC.CloseOffer)
	partnershipOffers.Delete("/:id", authMiddleware, offerC.DeleteOffer)

	return nil
}
