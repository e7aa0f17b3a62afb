package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally, and asks the session
// controller to authenticate. Validation failures never reach the network.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		a.notify.Show(noticeError, "Email is required")
		return common.ErrValidation
	}
	if !ValidEmail(username) {
		a.notify.Show(noticeError, "Please enter a valid email address")
		return common.ErrValidation
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		a.notify.Show(noticeError, "Password is required")
		return common.ErrValidation
	}

	if err := a.session.Login(ctx, models.Credentials{Username: username, Password: string(password)}); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Logged in as %s", username)
	return nil
}

// Signup collects the account fields with the same checks the web form ran,
// then creates the account and (via the controller) logs straight in.
func (a *App) Signup(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	if firstName == "" {
		a.notify.Show(noticeError, "First name is required")
		return common.ErrValidation
	}

	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	if lastName == "" {
		a.notify.Show(noticeError, "Last name is required")
		return common.ErrValidation
	}

	username, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		a.notify.Show(noticeError, "Email is required")
		return common.ErrValidation
	}
	if !ValidEmail(username) {
		a.notify.Show(noticeError, "Please enter a valid email address")
		return common.ErrValidation
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		a.notify.Show(noticeError, "Password is required")
		return common.ErrValidation
	}
	if len(password) < 8 {
		a.notify.Show(noticeError, "Password must be at least 8 characters")
		return common.ErrValidation
	}

	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	if string(confirm) != string(password) {
		a.notify.Show(noticeError, "Passwords do not match")
		return common.ErrValidation
	}

	req := models.UserRequest{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  string(password),
	}
	if err := a.session.Signup(ctx, req); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Account created, logged in as %s", username)
	return nil
}

// Logout drops the session. No server call is involved.
func (a *App) Logout() {
	a.session.Logout()
	a.notify.Show(noticeInfo, "Logged out")
}

// WhoAmI prints the current session's user record.
func (a *App) WhoAmI() {
	s := a.session.State()
	if !s.Authenticated || s.User == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s %s <%s>\n", s.User.FirstName, s.User.LastName, s.User.Username)
}
