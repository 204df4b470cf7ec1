// Per-service describe operations backing the operation table. Each returns
// the provider's raw response items as field maps; filtering happens server
// side where the API supports it and by exact field match otherwise.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/awsdsc/awsdsc/internal/query"
)

// ---- EC2 ----

func describeInstances(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &ec2.DescribeInstancesInput{}
	if ids := params["InstanceId"]; ids != "" {
		input.InstanceIds = query.SplitList(ids)
	}
	if state := params["State"]; state != "" {
		input.Filters = append(input.Filters, ec2types.Filter{
			Name:   aws.String("instance-state-name"),
			Values: []string{state},
		})
	}

	var instances []ec2types.Instance
	paginator := ec2.NewDescribeInstancesPaginator(f.EC2Client(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeInstances: %w", err)
		}
		for _, r := range page.Reservations {
			instances = append(instances, r.Instances...)
		}
		f.rateLimiter.Wait("ec2")
	}
	return toRecords(instances)
}

func describeSecurityGroups(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &ec2.DescribeSecurityGroupsInput{}
	if ids := params["GroupId"]; ids != "" {
		input.GroupIds = query.SplitList(ids)
	}
	if name := params["GroupName"]; name != "" {
		input.Filters = append(input.Filters, ec2types.Filter{
			Name:   aws.String("group-name"),
			Values: []string{name},
		})
	}

	var groups []ec2types.SecurityGroup
	paginator := ec2.NewDescribeSecurityGroupsPaginator(f.EC2Client(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeSecurityGroups: %w", err)
		}
		groups = append(groups, page.SecurityGroups...)
		f.rateLimiter.Wait("ec2")
	}
	return toRecords(groups)
}

func describeVpcs(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &ec2.DescribeVpcsInput{}
	if ids := params["VpcId"]; ids != "" {
		input.VpcIds = query.SplitList(ids)
	}

	out, err := f.EC2Client().DescribeVpcs(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("DescribeVpcs: %w", err)
	}
	return toRecords(out.Vpcs)
}

func describeSnapshots(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &ec2.DescribeSnapshotsInput{OwnerIds: []string{"self"}}
	if ids := params["SnapshotId"]; ids != "" {
		input.SnapshotIds = query.SplitList(ids)
	}

	var snapshots []ec2types.Snapshot
	paginator := ec2.NewDescribeSnapshotsPaginator(f.EC2Client(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeSnapshots: %w", err)
		}
		snapshots = append(snapshots, page.Snapshots...)
		f.rateLimiter.Wait("ec2")
	}
	return toRecords(snapshots)
}

// ---- S3 ----

func listBuckets(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	out, err := f.S3Client().ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListBuckets: %w", err)
	}
	records, err := toRecords(out.Buckets)
	if err != nil {
		return nil, err
	}
	return filterByField(records, "Name", params["Name"]), nil
}

// ---- IAM ----

func listIAMUsers(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var users []iamtypes.User
	paginator := iam.NewListUsersPaginator(f.IAMClient(), &iam.ListUsersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, page.Users...)
		f.rateLimiter.Wait("iam")
	}
	records, err := toRecords(users)
	if err != nil {
		return nil, err
	}
	return filterByField(records, "UserName", params["UserName"]), nil
}

func listIAMRoles(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var roles []iamtypes.Role
	paginator := iam.NewListRolesPaginator(f.IAMClient(), &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListRoles: %w", err)
		}
		roles = append(roles, page.Roles...)
		f.rateLimiter.Wait("iam")
	}
	records, err := toRecords(roles)
	if err != nil {
		return nil, err
	}
	return filterByField(records, "RoleName", params["RoleName"]), nil
}

func listIAMPolicies(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &iam.ListPoliciesInput{Scope: iamtypes.PolicyScopeTypeLocal}
	if scope := params["Scope"]; scope != "" {
		input.Scope = iamtypes.PolicyScopeType(scope)
	}

	var policies []iamtypes.Policy
	paginator := iam.NewListPoliciesPaginator(f.IAMClient(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListPolicies: %w", err)
		}
		policies = append(policies, page.Policies...)
		f.rateLimiter.Wait("iam")
	}
	records, err := toRecords(policies)
	if err != nil {
		return nil, err
	}
	return filterByField(records, "PolicyName", params["PolicyName"]), nil
}

// ---- Lambda ----

func listLambdaFunctions(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var records []map[string]any
	paginator := lambda.NewListFunctionsPaginator(f.LambdaClient(), &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListFunctions: %w", err)
		}
		pageRecords, err := toRecords(page.Functions)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("lambda")
	}
	return filterByField(records, "FunctionName", params["FunctionName"]), nil
}

// ---- KMS ----

func listKMSKeys(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var records []map[string]any
	paginator := kms.NewListKeysPaginator(f.KMSClient(), &kms.ListKeysInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListKeys: %w", err)
		}
		pageRecords, err := toRecords(page.Keys)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("kms")
	}
	return filterByField(records, "KeyId", params["KeyId"]), nil
}

// ---- SSM ----

func describeSSMParameters(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var records []map[string]any
	paginator := ssm.NewDescribeParametersPaginator(f.SSMClient(), &ssm.DescribeParametersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeParameters: %w", err)
		}
		pageRecords, err := toRecords(page.Parameters)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("ssm")
	}
	return filterByField(records, "Name", params["Name"]), nil
}

// ---- Secrets Manager ----

func listSecrets(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	var records []map[string]any
	paginator := secretsmanager.NewListSecretsPaginator(f.SecretsManagerClient(), &secretsmanager.ListSecretsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ListSecrets: %w", err)
		}
		pageRecords, err := toRecords(page.SecretList)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("secretsmanager")
	}
	return filterByField(records, "Name", params["Name"]), nil
}

// ---- CloudTrail ----

func describeTrails(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &cloudtrail.DescribeTrailsInput{}
	if name := params["Name"]; name != "" {
		input.TrailNameList = []string{name}
	}

	out, err := f.CloudTrailClient().DescribeTrails(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("DescribeTrails: %w", err)
	}
	return toRecords(out.TrailList)
}

// ---- CloudWatch Logs ----

func describeLogGroups(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &cloudwatchlogs.DescribeLogGroupsInput{}
	if prefix := params["LogGroupNamePrefix"]; prefix != "" {
		input.LogGroupNamePrefix = aws.String(prefix)
	}

	var records []map[string]any
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(f.CloudWatchLogsClient(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeLogGroups: %w", err)
		}
		pageRecords, err := toRecords(page.LogGroups)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("logs")
	}
	return records, nil
}

// ---- RDS ----

func describeDBInstances(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	input := &rds.DescribeDBInstancesInput{}
	if id := params["DBInstanceIdentifier"]; id != "" {
		input.DBInstanceIdentifier = aws.String(id)
	}

	var records []map[string]any
	paginator := rds.NewDescribeDBInstancesPaginator(f.RDSClient(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeDBInstances: %w", err)
		}
		pageRecords, err := toRecords(page.DBInstances)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		f.rateLimiter.Wait("rds")
	}
	return records, nil
}

// ---- DynamoDB ----

func describeDynamoDBTables(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error) {
	client := f.DynamoDBClient()

	names := []string{params["TableName"]}
	if params["TableName"] == "" {
		names = names[:0]
		paginator := dynamodb.NewListTablesPaginator(client, &dynamodb.ListTablesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("ListTables: %w", err)
			}
			names = append(names, page.TableNames...)
			f.rateLimiter.Wait("dynamodb")
		}
	}

	records := make([]map[string]any, 0, len(names))
	for _, name := range names {
		out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err != nil {
			return nil, fmt.Errorf("DescribeTable(%s): %w", name, err)
		}
		record, err := toRecord(out.Table)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		f.rateLimiter.Wait("dynamodb")
	}
	return records, nil
}
