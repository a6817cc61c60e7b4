package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Pastalavisto/iut-laval-grades-api/apps/api/echo"
	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
	logsvc "github.com/Pastalavisto/iut-laval-grades-api/services/logger"
	pdfsvc "github.com/Pastalavisto/iut-laval-grades-api/services/pdf"
	dummydb "github.com/Pastalavisto/iut-laval-grades-api/storage/database/dummy"
)

var (
	gradeRepo grade.Repository
	crsRepo   *dummydb.CourseRepository
)

func setup(t *testing.T) Server {
	conf := &core.Config{
		AppName:      "grades-api-test",
		TestMode:     true,
		PassingGrade: 10,
	}

	// set up DB & repos
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	gradeRepo = dummydb.NewGradeRepository(db)
	crsRepo = dummydb.NewCourseRepository(db)

	// set up services
	gradeSvc := grade.NewService(gradeRepo, crsRepo, pdfsvc.NewTranscriptService(conf), conf)

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Conf:           conf,
			Logger:         logsvc.NewNopLogger(),
			GradeSvc:       gradeSvc,
		},
	)
}

func createCourse(t *testing.T, code, name string, credits int) course.Course {
	crs, err := crsRepo.CreateCourse(context.Background(), course.Course{Code: code, Name: name, Credits: credits})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}

func createGrade(t *testing.T, studentID, courseID int, value float64, semester, academicYear string) grade.Grade {
	g, err := gradeRepo.CreateGrade(context.Background(), grade.Grade{
		StudentID:    studentID,
		CourseID:     courseID,
		Grade:        value,
		Semester:     semester,
		AcademicYear: academicYear,
	})
	if err != nil {
		t.Fatalf("createGrade() failed: %v", err)
	}
	return g
}

type httpErr struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
