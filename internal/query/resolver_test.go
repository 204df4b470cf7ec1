package query

import (
	"errors"
	"testing"

	"github.com/awsdsc/awsdsc/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.Entry{
			TypeName:  "AWS::EC2::Instance",
			Service:   "ec2",
			Operation: "DescribeInstances",
			Parameters: []catalog.ParameterSpec{
				{Name: "InstanceId", Kind: catalog.KindList},
				{Name: "State", Kind: catalog.KindEnum, Enum: []string{"running", "stopped"}},
			},
		},
		catalog.Entry{
			TypeName:  "AWS::DynamoDB::Table",
			Service:   "dynamodb",
			Operation: "DescribeTable",
			Parameters: []catalog.ParameterSpec{
				{Name: "TableName", Required: true, Kind: catalog.KindText},
				{Name: "IndexName", Kind: catalog.KindText},
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestResolve_EmptyParamsWhenAllOptional(t *testing.T) {
	r := NewResolver(testCatalog(t))

	req, err := r.Resolve("AWS::EC2::Instance", map[string]string{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if req.Entry.TypeName != "AWS::EC2::Instance" {
		t.Fatalf("wrong entry: %s", req.Entry.TypeName)
	}
	if len(req.Parameters) != 0 {
		t.Fatalf("expected empty parameters, got %v", req.Parameters)
	}
}

func TestResolve_UnknownType(t *testing.T) {
	r := NewResolver(testCatalog(t))

	_, err := r.Resolve("AWS::S3::Bucket", map[string]string{})
	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestResolve_MissingRequiredNamesFirstInOrder(t *testing.T) {
	r := NewResolver(testCatalog(t))

	_, err := r.Resolve("AWS::DynamoDB::Table", map[string]string{"IndexName": "gsi1"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Parameter != "TableName" {
		t.Fatalf("expected TableName named, got %s", ve.Parameter)
	}
}

func TestResolve_RequiredButWhitespaceOnly(t *testing.T) {
	r := NewResolver(testCatalog(t))

	_, err := r.Resolve("AWS::DynamoDB::Table", map[string]string{"TableName": "   "})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolve_TrimsFreeText(t *testing.T) {
	r := NewResolver(testCatalog(t))

	req, err := r.Resolve("AWS::DynamoDB::Table", map[string]string{"TableName": "  users  "})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if req.Parameters["TableName"] != "users" {
		t.Fatalf("expected trimmed value, got %q", req.Parameters["TableName"])
	}
}

func TestResolve_EnumOutsideAllowedSet(t *testing.T) {
	r := NewResolver(testCatalog(t))

	_, err := r.Resolve("AWS::EC2::Instance", map[string]string{"State": "hibernating"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Parameter != "State" {
		t.Fatalf("expected State named, got %s", ve.Parameter)
	}
}

func TestResolve_DropsUndeclaredParameters(t *testing.T) {
	r := NewResolver(testCatalog(t))

	req, err := r.Resolve("AWS::EC2::Instance", map[string]string{
		"InstanceId": "i-1",
		"Flavor":     "large",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := req.Parameters["Flavor"]; ok {
		t.Fatal("undeclared parameter survived resolution")
	}
	if req.Parameters["InstanceId"] != "i-1" {
		t.Fatalf("declared parameter lost: %v", req.Parameters)
	}
}

func TestResolve_ListKind(t *testing.T) {
	r := NewResolver(testCatalog(t))

	req, err := r.Resolve("AWS::EC2::Instance", map[string]string{"InstanceId": "i-1 i-2"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	elems := SplitList(req.Parameters["InstanceId"])
	if len(elems) != 2 || elems[0] != "i-1" || elems[1] != "i-2" {
		t.Fatalf("unexpected list elements: %v", elems)
	}
}

func TestValidateValue_Enum(t *testing.T) {
	spec := catalog.ParameterSpec{Name: "State", Kind: catalog.KindEnum, Enum: []string{"running"}}

	if err := ValidateValue(spec, "running"); err != nil {
		t.Fatalf("expected valid enum value: %v", err)
	}
	if err := ValidateValue(spec, "sleeping"); err == nil {
		t.Fatal("expected enum rejection")
	}
}
