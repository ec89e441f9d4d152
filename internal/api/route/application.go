package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/controller"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/application"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

func RegisterApplicationRoutes(app *fiber.App, ledger *application.Ledger, offerSvc *offers.Service) error {
	authMiddleware := IdentifyUser()
	applicationC := controller.NewApplicationController(ledger, offerSvc)

	jobs := app.Group("/applications/job")
	jobs.Post("/", authMiddleware, applicationC.SubmitJob)
	jobs.Get("/inbox", authMiddleware, applicationC.JobInbox)
	jobs.Get("/sent", authMiddleware, applicationC.JobSent)
	jobs.Post("/:id/approve", authMiddleware, applicationC.ApproveJob)
	jobs.Post("/:id/reject", authMiddleware, applicationC.RejectJob)
	jobs.Delete("/:id", authMiddleware, applicationC.DeleteJob)

	partnerships := app.Group("/applications/partnership")
	partnerships.Post("/", authMiddleware, applicationC.SubmitPartnership)
	partnerships.Get("/inbox", authMiddleware, applicationC.PartnershipInbox)
	partnerships.Get("/sent", authMiddleware, applicationC.PartnershipSent)
	partnerships.Post("/:id/approve", authMiddleware, applicationC.ApprovePartnership)
	partnerships.Post("/:id/reject", authMiddleware, applicationC.RejectPartnership)
	partnerships.Delete("/:id", authMiddleware, applicationC.DeletePartnership)

	return nil
}
