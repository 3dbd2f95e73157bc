package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	result, err := a.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid email or password.")
			return
		}
		fmt.Println("Login failed:", err.Error())
		return
	}

	a.token = result.Token
	a.userEmail = result.Email

	fmt.Printf("Logged in as %s (id=%s)\n", result.Email, result.ID)
	fmt.Println("Token:", result.Token)
}

func (a *App) Whoami(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return
	}

	id, err := a.api.Me(ctx, a.token)
	if err != nil {
		fmt.Println("Request failed:", err.Error())
		return
	}

	fmt.Printf("%s (id=%s)\n", a.userEmail, id)
}
