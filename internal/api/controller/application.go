package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/application"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/response"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

type applicationController struct {
	Ledger *application.Ledger
	Offers *offers.Service
}

func NewApplicationController(ledger *application.Ledger, offerSvc *offers.Service) *applicationController {
	return &applicationController{
		Ledger: ledger,
		Offers: offerSvc,
	}
}

type SubmitJobReq struct {
	JobID       string                   `json:"jobId"`
	CoverLetter string                   `json:"coverLetter"`
	Portfolio   domain.PortfolioSnapshot `json:"portfolio"`
}

// SubmitJob submits a job application for the current user. The vacancy's
// title and employer are denormalized onto the record at this point and
// never refreshed.
func (ac applicationController) SubmitJob(c *fiber.Ctx) error {
	ctx := c.Context()

	req := new(SubmitJobReq)
	if err := c.BodyParser(req); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	vacancy, err := ac.Offers.GetJobVacancy(ctx, req.JobID)
	if err != nil {
		return response.SendError(c, StatusFromErr(err), "vacancy not found")
	}

	app, err := ac.Ledger.SubmitJob(ctx, application.SubmitJobInput{
		JobID:       vacancy.ID,
		JobTitle:    vacancy.Title,
		EmployerID:  vacancy.EmployerID,
		Applicant:   user,
		CoverLetter: req.CoverLetter,
		Portfolio:   req.Portfolio,
	})
	if err != nil {
		if app.ID != "" {
			// The application exists; only the owner notification failed.
			logrus.Error(err)
			return response.SendSuccess(c, app, "application submitted")
		}
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, app, "application submitted")
}

type SubmitPartnershipReq struct {
	OfferID string `json:"offerId"`
	Message string `json:"message"`
}

// SubmitPartnership submits a partnership request on behalf of the current
// user's community.
func (ac applicationController) SubmitPartnership(c *fiber.Ctx) error {
	ctx := c.Context()

	req := new(SubmitPartnershipReq)
	if err := c.BodyParser(req); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	offer, err := ac.Offers.GetPartnershipOffer(ctx, req.OfferID)
	if err != nil {
		return response.SendError(c, StatusFromErr(err), "offer not found")
	}

	app, err := ac.Ledger.SubmitPartnership(ctx, application.SubmitPartnershipInput{
		OfferID:    offer.ID,
		OfferTitle: offer.Title,
		OwnerID:    offer.AdminID,
		Applicant:  user,
		Message:    req.Message,
	})
	if err != nil {
		if app.ID != "" {
			logrus.Error(err)
			return response.SendSuccess(c, app, "request submitted")
		}
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, app, "request submitted")
}

type RejectReq struct {
	Reason string `json:"reason"`
}

func (ac applicationController) ApproveJob(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := ac.Ledger.ApproveJob(c.Context(), c.Params("id"), user.ID); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "application approved")
}

func (ac applicationController) RejectJob(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	// The reason is optional; an empty body is fine.
	req := new(RejectReq)
	_ = c.BodyParser(req)
	if err := ac.Ledger.RejectJob(c.Context(), c.Params("id"), user.ID, req.Reason); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "application rejected")
}

func (ac applicationController) DeleteJob(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := ac.Ledger.DeleteJob(c.Context(), c.Params("id"), user.ID); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "application deleted")
}

// JobInbox lists applications awaiting the current employer, newest first.
func (ac applicationController) JobInbox(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	apps, err := ac.Ledger.ListJobsFor(c.Context(), docstore.Fields{"employerId": user.ID})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, apps, "")
}

// JobSent lists the current user's own submissions, newest first.
func (ac applicationController) JobSent(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	apps, err := ac.Ledger.ListJobsFor(c.Context(), docstore.Fields{"applicantId": user.ID})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, apps, "")
}

func (ac applicationController) ApprovePartnership(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := ac.Ledger.ApprovePartnership(c.Context(), c.Params("id"), user.ID); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "request approved")
}

func (ac applicationController) RejectPartnership(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	req := new(RejectReq)
	_ = c.BodyParser(req)
	if err := ac.Ledger.RejectPartnership(c.Context(), c.Params("id"), user.ID, req.Reason); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "request rejected")
}

func (ac applicationController) DeletePartnership(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := ac.Ledger.DeletePartnership(c.Context(), c.Params("id"), user.ID); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "request deleted")
}

// PartnershipInbox lists requests awaiting the current community admin.
func (ac applicationController) PartnershipInbox(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	apps, err := ac.Ledger.ListPartnershipsFor(c.Context(), docstore.Fields{"ownerId": user.ID})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, apps, "")
}

// PartnershipSent lists the current user's own requests.
func (ac applicationController) PartnershipSent(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	apps, err := ac.Ledger.ListPartnershipsFor(c.Context(), docstore.Fields{"applicantId": user.ID})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, apps, "")
}
