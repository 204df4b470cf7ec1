package catalog

// Builtin returns the catalog of resource types supported out of the box.
// The parameter names follow the field naming of the corresponding AWS API
// so that query completion candidates line up with response records.
func Builtin() *Catalog {
	c, err := New(
		Entry{
			TypeName:  "AWS::EC2::Instance",
			Service:   "ec2",
			Operation: "DescribeInstances",
			Parameters: []ParameterSpec{
				{Name: "InstanceId", Kind: KindList, Field: "InstanceId"},
				{Name: "State", Kind: KindEnum, Enum: []string{
					"pending", "running", "shutting-down", "terminated", "stopping", "stopped",
				}},
			},
		},
		Entry{
			TypeName:  "AWS::EC2::SecurityGroup",
			Service:   "ec2",
			Operation: "DescribeSecurityGroups",
			Parameters: []ParameterSpec{
				{Name: "GroupId", Kind: KindList, Field: "GroupId"},
				{Name: "GroupName", Kind: KindText, Field: "GroupName"},
			},
		},
		Entry{
			TypeName:  "AWS::EC2::Vpc",
			Service:   "ec2",
			Operation: "DescribeVpcs",
			Parameters: []ParameterSpec{
				{Name: "VpcId", Kind: KindList, Field: "VpcId"},
			},
		},
		Entry{
			TypeName:  "AWS::EC2::Snapshot",
			Service:   "ec2",
			Operation: "DescribeSnapshots",
			Parameters: []ParameterSpec{
				{Name: "SnapshotId", Kind: KindList, Field: "SnapshotId"},
			},
		},
		Entry{
			TypeName:  "AWS::S3::Bucket",
			Service:   "s3",
			Operation: "ListBuckets",
			Parameters: []ParameterSpec{
				{Name: "Name", Kind: KindText, Field: "Name"},
			},
		},
		Entry{
			TypeName:  "AWS::IAM::User",
			Service:   "iam",
			Operation: "ListUsers",
			Parameters: []ParameterSpec{
				{Name: "UserName", Kind: KindText, Field: "UserName"},
			},
		},
		Entry{
			TypeName:  "AWS::IAM::Role",
			Service:   "iam",
			Operation: "ListRoles",
			Parameters: []ParameterSpec{
				{Name: "RoleName", Kind: KindText, Field: "RoleName"},
			},
		},
		Entry{
			TypeName:  "AWS::IAM::Policy",
			Service:   "iam",
			Operation: "ListPolicies",
			Parameters: []ParameterSpec{
				{Name: "PolicyName", Kind: KindText, Field: "PolicyName"},
				{Name: "Scope", Kind: KindEnum, Enum: []string{"All", "AWS", "Local"}},
			},
		},
		Entry{
			TypeName:  "AWS::Lambda::Function",
			Service:   "lambda",
			Operation: "ListFunctions",
			Parameters: []ParameterSpec{
				{Name: "FunctionName", Kind: KindText, Field: "FunctionName"},
			},
		},
		Entry{
			TypeName:  "AWS::KMS::Key",
			Service:   "kms",
			Operation: "ListKeys",
			Parameters: []ParameterSpec{
				{Name: "KeyId", Kind: KindText, Field: "KeyId"},
			},
		},
		Entry{
			TypeName:  "AWS::SSM::Parameter",
			Service:   "ssm",
			Operation: "DescribeParameters",
			Parameters: []ParameterSpec{
				{Name: "Name", Kind: KindText, Field: "Name"},
			},
		},
		Entry{
			TypeName:  "AWS::SecretsManager::Secret",
			Service:   "secretsmanager",
			Operation: "ListSecrets",
			Parameters: []ParameterSpec{
				{Name: "Name", Kind: KindText, Field: "Name"},
			},
		},
		Entry{
			TypeName:  "AWS::CloudTrail::Trail",
			Service:   "cloudtrail",
			Operation: "DescribeTrails",
			Parameters: []ParameterSpec{
				{Name: "Name", Kind: KindText, Field: "Name"},
			},
		},
		Entry{
			TypeName:  "AWS::Logs::LogGroup",
			Service:   "logs",
			Operation: "DescribeLogGroups",
			Parameters: []ParameterSpec{
				{Name: "LogGroupNamePrefix", Kind: KindText, Field: "LogGroupName"},
			},
		},
		Entry{
			TypeName:  "AWS::RDS::DBInstance",
			Service:   "rds",
			Operation: "DescribeDBInstances",
			Parameters: []ParameterSpec{
				{Name: "DBInstanceIdentifier", Kind: KindText, Field: "DBInstanceIdentifier"},
			},
		},
		Entry{
			TypeName:  "AWS::DynamoDB::Table",
			Service:   "dynamodb",
			Operation: "DescribeTable",
			Parameters: []ParameterSpec{
				{Name: "TableName", Kind: KindText, Field: "TableName"},
			},
		},
	)
	if err != nil {
		// Built-in entries are fixed at compile time; a duplicate is a
		// programming error.
		panic(err)
	}
	return c
}
