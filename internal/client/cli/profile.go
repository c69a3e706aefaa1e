package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// profileCmd shows the current profile and optionally updates it. Pressing
// Enter on a prompt keeps the existing value.
func (a *App) profileCmd(ctx context.Context) error {
	p := a.profile()
	if p == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Println("Email:", p.Email)
	fmt.Println("Name: ", p.Name)
	fmt.Println("City: ", p.City)
	fmt.Println("Phone:", p.Phone)

	answer, err := getSimpleText(a.reader, "Edit profile? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", p.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = p.Name
	}

	city, err := getSimpleText(a.reader, fmt.Sprintf("City [%s]", p.City), os.Stdout)
	if err != nil {
		return err
	}
	if city == "" {
		city = p.City
	}

	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", p.Phone), os.Stdout)
	if err != nil {
		return err
	}
	if phone == "" {
		phone = p.Phone
	}

	if err := a.session.UpdateProfile(ctx, name, city, phone); err != nil {
		log.Println(err.Error())
		return nil
	}

	fmt.Println("Profile updated")
	return nil
}
