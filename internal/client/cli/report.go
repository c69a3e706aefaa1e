package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shivtchandra/CivicWatch/internal/client/aggregate"
	"github.com/shivtchandra/CivicWatch/internal/client/form"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
)

func parseBucket(s string) (aggregate.Bucket, bool) {
	switch strings.ToLower(s) {
	case "missing":
		return aggregate.BucketMissing, true
	case "lost-found", "lostfound", "lost":
		return aggregate.BucketLostFound, true
	case "safety":
		return aggregate.BucketSafety, true
	case "civic":
		return aggregate.BucketCivic, true
	default:
		return "", false
	}
}

// list shows bucket counts, or the reports of one bucket with an optional
// free-text query. Reports are scoped to the profile's city when set.
func (a *App) list(ctx context.Context, args []string) {
	reports, err := a.api.ListReports(ctx, "")
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(args) == 0 {
		local := aggregate.FilterByCity(reports, a.profileCity())
		parts := aggregate.Partition(local)
		for _, b := range aggregate.Buckets {
			fmt.Printf("%-12s %d\n", b, len(parts[b]))
		}
		return
	}

	bucket, ok := parseBucket(args[0])
	if !ok {
		fmt.Println("Unknown bucket:", args[0], "(want one of: missing, lost-found, safety, civic)")
		return
	}
	query := strings.Join(args[1:], " ")

	for _, r := range aggregate.View(reports, a.profileCity(), query, bucket) {
		a.printReportLine(r)
	}
}

func (a *App) printReportLine(r *models.Report) {
	line := fmt.Sprintf("%s  [%s/%s]  %s", r.ID, r.Status, r.Priority, r.Title)
	if loc := aggregate.DisplayLocation(r); loc != "" {
		line += "  @ " + loc
	}
	line += "  by " + r.OwnerName()
	fmt.Println(line)
}

func (a *App) show(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: show <id>")
		return
	}

	r, err := a.api.GetReport(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Println("Title:      ", r.Title)
	fmt.Println("Category:   ", r.Category, "("+string(aggregate.BucketFor(r.Category))+")")
	fmt.Println("Status:     ", r.Status)
	fmt.Println("Priority:   ", r.Priority)
	if loc := aggregate.DisplayLocation(r); loc != "" {
		fmt.Println("Location:   ", loc)
	}
	fmt.Println("Reported by:", r.OwnerName())
	fmt.Println("Created:    ", r.CreatedAt.Format("2006-01-02 15:04"))
	if r.ContactInfo != "" {
		fmt.Println("Contact:    ", r.ContactInfo)
	}
	if r.GovernmentResponse != "" {
		fmt.Println("Response:   ", r.GovernmentResponse)
	}
	fmt.Println()
	fmt.Println(r.Description)

	if r.ImageKey != "" {
		url, err := a.api.GetUploadURL(ctx, r.ImageKey)
		if err == nil {
			fmt.Println("Image:      ", url)
		}
	}
}

// report walks the submission form interactively and submits on success.
func (a *App) report(ctx context.Context) error {
	bucketName, err := getSimpleText(a.reader, "Report type (missing, lost-found, safety, civic)", os.Stdout)
	if err != nil {
		return err
	}
	bucket, ok := parseBucket(bucketName)
	if !ok {
		fmt.Println("Unknown report type:", bucketName)
		return nil
	}

	f := form.New(bucket, a.profile())

	if f.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if f.Description, err = GetMultiline(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	if f.Location, err = getSimpleText(a.reader, "Location (optional)", os.Stdout); err != nil {
		return err
	}
	if priority, err := getSimpleText(a.reader, "Priority (low, medium, high; default medium)", os.Stdout); err != nil {
		return err
	} else if priority != "" {
		f.Priority = priority
	}

	if bucket == aggregate.BucketSafety || bucket == aggregate.BucketCivic {
		if f.IssueType, err = getSimpleText(a.reader, "Issue type (optional)", os.Stdout); err != nil {
			return err
		}
	}
	if bucket != aggregate.BucketCivic {
		if phone, err := getSimpleText(a.reader, fmt.Sprintf("Contact phone [%s]", f.ContactPhone), os.Stdout); err != nil {
			return err
		} else if phone != "" {
			f.ContactPhone = phone
		}
	}

	if err := f.Validate(); err != nil {
		fmt.Println("Not submitted:", err.Error())
		return nil
	}

	r, err := a.api.CreateReport(ctx, f.Draft())
	if err != nil {
		log.Println(err.Error())
		return nil
	}

	f.Reset(a.profile())
	fmt.Println("Created report", r.ID)
	return nil
}

func (a *App) status(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: status <id> <open|in_progress|resolved>")
		return
	}

	r, err := a.api.UpdateReportStatus(ctx, args[0], args[1])
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Status is now", r.Status)
}

func (a *App) delete(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: delete <id>")
		return
	}

	if err := a.api.DeleteReport(ctx, args[0]); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Deleted")
}
