package server

import (
	"github.com/gofiber/fiber/v2"
)

// PostUser handles POST /users
// @Summary Register a user
// @Description Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string,fullname=string} true "Registration request"
// @Success 201 {object} object{status=string,data=object{addedUser=models.RegisteredUser}}
// @Failure 400 {object} object{status=string,message=string}
// @Router /users [post]
func (s *Server) PostUser(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.userSvc().RegisterUser(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{"addedUser": added})
}

// PostAuthentication handles POST /authentications
// @Summary Log in
// @Description Exchange credentials for an access and refresh token pair
// @Tags authentications
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login request"
// @Success 201 {object} object{status=string,data=service.Tokens}
// @Failure 400 {object} object{status=string,message=string}
// @Failure 401 {object} object{status=string,message=string}
// @Router /authentications [post]
func (s *Server) PostAuthentication(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	tokens, err := s.authSvc().Login(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, tokens)
}

// PutAuthentication handles PUT /authentications
// @Summary Refresh access token
// @Tags authentications
// @Accept json
// @Produce json
// @Param request body object{refreshToken=string} true "Refresh request"
// @Success 200 {object} object{status=string,data=object{accessToken=string}}
// @Failure 400 {object} object{status=string,message=string}
// @Router /authentications [put]
func (s *Server) PutAuthentication(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	accessToken, err := s.authSvc().Refresh(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, fiber.Map{"accessToken": accessToken})
}

// DeleteAuthentication handles DELETE /authentications
// @Summary Log out
// @Description Revoke a refresh token
// @Tags authentications
// @Accept json
// @Produce json
// @Param request body object{refreshToken=string} true "Logout request"
// @Success 200 {object} object{status=string}
// @Failure 400 {object} object{status=string,message=string}
// @Router /authentications [delete]
func (s *Server) DeleteAuthentication(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.authSvc().Logout(c.UserContext(), payload); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}
