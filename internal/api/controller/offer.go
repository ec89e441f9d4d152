package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/response"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

type offerController struct {
	Offers *offers.Service
}

func NewOfferController(svc *offers.Service) *offerController {
	return &offerController{Offers: svc}
}

type CreateVacancyReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Level       string   `json:"level"`
	CommunityID string   `json:"communityId"`
}

func (oc offerController) CreateVacancy(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	req := new(CreateVacancyReq)
	if err := c.BodyParser(req); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	vacancy, err := oc.Offers.CreateJobVacancy(c.Context(), domain.JobVacancy{
		Title:       req.Title,
		Description: req.Description,
		EmployerID:  user.ID,
		CommunityID: req.CommunityID,
		Skills:      req.Skills,
		Level:       req.Level,
	})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, vacancy, "vacancy created")
}

func (oc offerController) GetVacancy(c *fiber.Ctx) error {
	vacancy, err := oc.Offers.GetJobVacancy(c.Context(), c.Params("id"))
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, vacancy, "")
}

func (oc offerController) ListVacancies(c *fiber.Ctx) error {
	vacancies, err := oc.Offers.ListJobVacancies(c.Context())
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, vacancies, "")
}

func (oc offerController) CloseVacancy(c *fiber.Ctx) error {
	if err := oc.Offers.CloseJobVacancy(c.Context(), c.Params("id")); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "vacancy closed")
}

func (oc offerController) DeleteVacancy(c *fiber.Ctx) error {
	if err := oc.Offers.DeleteJobVacancy(c.Context(), c.Params("id")); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "vacancy deleted")
}

type CreateOfferReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (oc offerController) CreateOffer(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	req := new(CreateOfferReq)
	if err := c.BodyParser(req); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	offer, err := oc.Offers.CreatePartnershipOffer(c.Context(), domain.PartnershipOffer{
		Title:         req.Title,
		Description:   req.Description,
		CommunityID:   user.CommunityID,
		CommunityName: user.CommunityName,
		AdminID:       user.ID,
	})
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, offer, "offer created")
}

func (oc offerController) GetOffer(c *fiber.Ctx) error {
	offer, err := oc.Offers.GetPartnershipOffer(c.Context(), c.Params("id"))
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, offer, "")
}

func (oc offerController) ListOffers(c *fiber.Ctx) error {
	offerList, err := oc.Offers.ListPartnershipOffers(c.Context())
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, offerList, "")
}

func (oc offerController) CloseOffer(c *fiber.Ctx) error {
	if err := oc.Offers.ClosePartnershipOffer(c.Context(), c.Params("id")); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "offer closed")
}

func (oc offerController) DeleteOffer(c *fiber.Ctx) error {
	if err := oc.Offers.DeletePartnershipOffer(c.Context(), c.Params("id")); err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, nil, "offer deleted")
}
