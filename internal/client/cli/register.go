package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {

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

	result, err := a.api.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			fmt.Println("A user with this email already exists.")
			return
		}
		fmt.Println("Registration failed:", err.Error())
		return
	}

	a.token = result.Token
	a.userEmail = result.Email

	fmt.Printf("Registered %s (id=%s)\n", result.Email, result.ID)
	fmt.Println("Token:", result.Token)
}
